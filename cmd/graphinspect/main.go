package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dd0wney/cluso-graphgen/pkg/graphfile"
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Usage: graphinspect <graph-file>")
		fmt.Println()
		fmt.Println("Reads a benchmark graph file (plain or snappy-compressed) and")
		fmt.Println("reports its structure.")
		os.Exit(1)
	}
	path := flag.Arg(0)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	g, err := graphfile.ReadFile(path)
	if err != nil {
		logger.Error("failed to read graph", "path", path, "error", err)
		os.Exit(1)
	}

	s := graphfile.Analyze(g)

	fmt.Printf("Graph: %s\n", path)
	fmt.Printf("─────────────────────────────\n")
	fmt.Printf("Nodes:  %d\n", s.Nodes)
	fmt.Printf("Edges:  %d\n", s.Edges)
	fmt.Printf("\nWeights:\n")
	fmt.Printf("  Min:      %d\n", s.WeightMin)
	fmt.Printf("  Max:      %d\n", s.WeightMax)
	fmt.Printf("  Mean:     %.2f\n", s.WeightMean)
	fmt.Printf("  StdDev:   %.2f\n", s.WeightStdDev)
	fmt.Printf("\nOut-degree:\n")
	fmt.Printf("  Mean:     %.2f\n", s.OutDegreeMean)
	fmt.Printf("  Max:      %d\n", s.OutDegreeMax)
	fmt.Printf("\nReachability from node 0: %d/%d nodes\n", s.ReachableFromZero, s.Nodes)

	if s.Nodes > 0 && s.ReachableFromZero < s.Nodes {
		fmt.Printf("⚠️  %d nodes are unreachable from node 0\n", s.Nodes-s.ReachableFromZero)
		os.Exit(1)
	}
}
