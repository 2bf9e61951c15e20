// Package manifest loads YAML batch manifests describing several graph
// files to generate in one run.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-graphgen/pkg/generator"
)

// Defaults applied to manifest jobs and CLI flags alike.
const (
	DefaultNodes     = 50000
	DefaultEdges     = 300000
	DefaultMaxWeight = 1000
	DefaultSeed      = 42
)

// Job describes one graph file to generate. Nil fields take the
// defaults above, so seed: 0 in a manifest stays an explicit zero.
type Job struct {
	Output    string `yaml:"output"`
	Nodes     *int   `yaml:"nodes"`
	Edges     *int   `yaml:"edges"`
	MaxWeight *int64 `yaml:"max_weight"`
	Seed      *int64 `yaml:"seed"`
	Compress  bool   `yaml:"compress"`
}

// Manifest is the top-level document: a list of graph jobs.
type Manifest struct {
	Graphs []Job `yaml:"graphs"`
}

// Params resolves the job's generation parameters, filling defaults.
func (j Job) Params() generator.Params {
	p := generator.Params{
		Nodes:     DefaultNodes,
		Edges:     DefaultEdges,
		MaxWeight: DefaultMaxWeight,
		Seed:      DefaultSeed,
	}
	if j.Nodes != nil {
		p.Nodes = *j.Nodes
	}
	if j.Edges != nil {
		p.Edges = *j.Edges
	}
	if j.MaxWeight != nil {
		p.MaxWeight = *j.MaxWeight
	}
	if j.Seed != nil {
		p.Seed = *j.Seed
	}
	return p
}

// Load reads and validates a manifest file. Every job must carry an
// output path and feasible generation parameters.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m.Graphs) == 0 {
		return nil, errors.New("manifest lists no graphs")
	}

	for i, job := range m.Graphs {
		if job.Output == "" {
			return nil, fmt.Errorf("graph %d: output path is required", i)
		}
		if err := job.Params().Validate(); err != nil {
			return nil, fmt.Errorf("graph %d (%s): %w", i, job.Output, err)
		}
	}
	return &m, nil
}
