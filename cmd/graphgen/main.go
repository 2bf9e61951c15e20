package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dd0wney/cluso-graphgen/pkg/generator"
	"github.com/dd0wney/cluso-graphgen/pkg/graphfile"
	"github.com/dd0wney/cluso-graphgen/pkg/manifest"
)

func main() {
	nodes := flag.Int("nodes", manifest.DefaultNodes, "Number of nodes to generate")
	edges := flag.Int("edges", manifest.DefaultEdges, "Number of directed edges")
	maxWeight := flag.Int64("max-weight", manifest.DefaultMaxWeight, "Maximum edge weight")
	seed := flag.Int64("seed", manifest.DefaultSeed, "Random seed for reproducibility")
	compress := flag.Bool("compress", false, "Write a framed snappy stream instead of plain text")
	configFile := flag.String("config", "", "YAML manifest describing multiple graphs (overrides the other flags)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *configFile != "" {
		m, err := manifest.Load(*configFile)
		if err != nil {
			logger.Error("failed to load manifest", "config", *configFile, "error", err)
			os.Exit(1)
		}
		for _, job := range m.Graphs {
			if err := runJob(logger, job); err != nil {
				logger.Error("generation failed", "output", job.Output, "error", err)
				os.Exit(1)
			}
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Println("Usage: graphgen [flags] <output-path>")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	job := manifest.Job{
		Output:    flag.Arg(0),
		Nodes:     nodes,
		Edges:     edges,
		MaxWeight: maxWeight,
		Seed:      seed,
		Compress:  *compress,
	}
	if err := runJob(logger, job); err != nil {
		logger.Error("generation failed", "output", job.Output, "error", err)
		os.Exit(1)
	}
}

// runJob generates one graph file. Parameters are validated before the
// output file is created, so invalid input never leaves a partial file.
func runJob(logger *slog.Logger, job manifest.Job) error {
	p := job.Params()
	if err := p.Validate(); err != nil {
		return err
	}

	logger.Info("generating graph",
		"output", job.Output,
		"nodes", p.Nodes,
		"edges", p.Edges,
		"max_weight", p.MaxWeight,
		"seed", p.Seed,
		"compress", job.Compress,
	)

	header := graphfile.Header{
		Nodes:     p.Nodes,
		Edges:     p.Edges,
		MaxWeight: p.MaxWeight,
		Seed:      p.Seed,
	}
	w, err := graphfile.Create(job.Output, header, job.Compress)
	if err != nil {
		return err
	}

	written := 0
	if err := generator.Stream(p, func(e generator.Edge) error {
		written++
		return w.WriteEdge(e)
	}); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	fmt.Printf("Wrote %d edges covering %d nodes to %s\n", written, p.Nodes, job.Output)
	return nil
}
