package graphfile

import "gonum.org/v1/gonum/stat"

// Summary describes the structure of a loaded graph.
type Summary struct {
	Nodes int
	Edges int

	WeightMin    int64
	WeightMax    int64
	WeightMean   float64
	WeightStdDev float64

	OutDegreeMax  int
	OutDegreeMean float64

	// ReachableFromZero counts nodes reachable from node 0, including
	// node 0 itself. Equal to Nodes when the backbone is intact.
	ReachableFromZero int
}

// Analyze computes structural statistics over g.
func Analyze(g *Graph) Summary {
	s := Summary{
		Nodes: g.NodeCount,
		Edges: len(g.Edges),
	}
	if len(g.Edges) == 0 {
		return s
	}

	weights := make([]float64, len(g.Edges))
	outDegree := make([]int, g.NodeCount)
	s.WeightMin = g.Edges[0].Weight
	s.WeightMax = g.Edges[0].Weight
	for i, e := range g.Edges {
		weights[i] = float64(e.Weight)
		outDegree[e.From]++
		if e.Weight < s.WeightMin {
			s.WeightMin = e.Weight
		}
		if e.Weight > s.WeightMax {
			s.WeightMax = e.Weight
		}
	}

	s.WeightMean = stat.Mean(weights, nil)
	s.WeightStdDev = stat.StdDev(weights, nil)

	totalOut := 0
	for _, d := range outDegree {
		totalOut += d
		if d > s.OutDegreeMax {
			s.OutDegreeMax = d
		}
	}
	s.OutDegreeMean = float64(totalOut) / float64(g.NodeCount)

	s.ReachableFromZero = ReachableFrom(g, 0)
	return s
}

// ReachableFrom returns how many nodes a BFS over directed edges visits
// starting at src, counting src itself. Returns 0 when src is not a
// valid node id.
func ReachableFrom(g *Graph, src int) int {
	if src < 0 || src >= g.NodeCount {
		return 0
	}

	adjacency := make([][]int, g.NodeCount)
	for _, e := range g.Edges {
		adjacency[e.From] = append(adjacency[e.From], e.To)
	}

	visited := make([]bool, g.NodeCount)
	visited[src] = true
	queue := []int{src}
	count := 1

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range adjacency[current] {
			if !visited[next] {
				visited[next] = true
				count++
				queue = append(queue, next)
			}
		}
	}
	return count
}
