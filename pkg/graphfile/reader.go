package graphfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"

	"github.com/dd0wney/cluso-graphgen/pkg/generator"
)

// Graph is a parsed edge list. NodeCount is the highest node id seen
// plus one; an empty file yields NodeCount 0.
type Graph struct {
	Edges     []generator.Edge
	NodeCount int
}

// Magic prefix of a framed snappy stream.
var snappyMagic = []byte("\xff\x06\x00\x00sNaPpY")

// Read parses a graph from r, auto-detecting framed snappy compression.
// Blank lines and lines starting with # are skipped.
func Read(r io.Reader) (*Graph, error) {
	br := bufio.NewReader(r)
	if peek, err := br.Peek(len(snappyMagic)); err == nil && bytes.Equal(peek, snappyMagic) {
		return parse(snappy.NewReader(br))
	}
	return parse(br)
}

// ReadFile parses the graph file at path.
func ReadFile(path string) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open graph file: %w", err)
	}
	defer file.Close()

	g, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return g, nil
}

func parse(r io.Reader) (*Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	g := &Graph{}
	maxNode := -1

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid line in graph file: %q", line)
		}
		from, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("invalid line in graph file: %q", line)
		}
		to, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid line in graph file: %q", line)
		}
		weight, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid line in graph file: %q", line)
		}
		if from < 0 || to < 0 {
			return nil, fmt.Errorf("node ids must be non-negative: %q", line)
		}
		if weight < 0 {
			return nil, fmt.Errorf("edge weights must be non-negative: %q", line)
		}

		g.Edges = append(g.Edges, generator.Edge{From: from, To: to, Weight: weight})
		if from > maxNode {
			maxNode = from
		}
		if to > maxNode {
			maxNode = to
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan graph file: %w", err)
	}

	g.NodeCount = maxNode + 1
	return g, nil
}
