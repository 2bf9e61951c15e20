// Package generator produces synthetic directed weighted graphs for
// shortest-path benchmarking.
//
// Every graph starts with a backbone path 0→1→…→Nodes-1 so that all
// nodes are reachable from node 0, then random edges fill the remaining
// budget by rejection sampling: candidate pairs are redrawn when they
// would form a self-loop or duplicate an existing edge.
//
// The random stream comes from math/rand.New(rand.NewSource(seed)).
// The Go 1 compatibility promise fixes that generator's output for a
// given seed, so the same Params always produce a byte-identical edge
// sequence: backbone edges first in increasing order, then random-fill
// edges in acceptance order.
package generator

import "math/rand"

// Edge is a single directed weighted edge. From and To are zero-based
// node ids; Weight lies in [1, MaxWeight].
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Generate validates p and returns the complete edge sequence.
func Generate(p Params) ([]Edge, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	edges := make([]Edge, 0, p.Edges)
	generate(p, func(e Edge) error {
		edges = append(edges, e)
		return nil
	})
	return edges, nil
}

// Stream validates p and passes each edge to fn as it is produced,
// without materializing the sequence. If fn returns an error, streaming
// stops and the error is returned.
func Stream(p Params, fn func(Edge) error) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return generate(p, fn)
}

func generate(p Params, fn func(Edge) error) error {
	rng := rand.New(rand.NewSource(p.Seed))
	used := make(map[[2]int]struct{}, p.Edges)

	// Backbone phase: a simple path guarantees reachability from node 0.
	for u := 0; u < p.Nodes-1; u++ {
		w := rng.Int63n(p.MaxWeight) + 1
		used[[2]int{u, u + 1}] = struct{}{}
		if err := fn(Edge{From: u, To: u + 1, Weight: w}); err != nil {
			return err
		}
	}

	// Random-fill phase: rejection sampling over ordered node pairs.
	// Retries stay cheap while the requested density is well below the
	// Nodes*(Nodes-1) maximum; validation only guarantees feasibility.
	remaining := p.Edges - (p.Nodes - 1)
	for remaining > 0 {
		u := rng.Intn(p.Nodes)
		v := rng.Intn(p.Nodes)
		if u == v {
			continue
		}
		key := [2]int{u, v}
		if _, ok := used[key]; ok {
			continue
		}
		w := rng.Int63n(p.MaxWeight) + 1
		used[key] = struct{}{}
		if err := fn(Edge{From: u, To: v, Weight: w}); err != nil {
			return err
		}
		remaining--
	}
	return nil
}
