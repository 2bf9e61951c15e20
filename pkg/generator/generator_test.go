package generator

import (
	"errors"
	"reflect"
	"testing"
)

// TestGenerate_EdgeCount verifies the emitted count matches the request
func TestGenerate_EdgeCount(t *testing.T) {
	p := Params{Nodes: 100, Edges: 500, MaxWeight: 50, Seed: 42}

	edges, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(edges) != p.Edges {
		t.Errorf("Expected %d edges, got %d", p.Edges, len(edges))
	}
}

// TestGenerate_BackbonePrefix verifies the path 0→1→…→N-1 comes first
func TestGenerate_BackbonePrefix(t *testing.T) {
	p := Params{Nodes: 10, Edges: 30, MaxWeight: 100, Seed: 7}

	edges, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for u := 0; u < p.Nodes-1; u++ {
		e := edges[u]
		if e.From != u || e.To != u+1 {
			t.Errorf("Backbone edge %d: expected (%d,%d), got (%d,%d)", u, u, u+1, e.From, e.To)
		}
	}
}

// TestGenerate_NoSelfLoopsNoDuplicates checks pair uniqueness and from != to
func TestGenerate_NoSelfLoopsNoDuplicates(t *testing.T) {
	p := Params{Nodes: 20, Edges: 200, MaxWeight: 10, Seed: 3}

	edges, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	seen := make(map[[2]int]bool)
	for _, e := range edges {
		if e.From == e.To {
			t.Errorf("Self-loop emitted: (%d,%d)", e.From, e.To)
		}
		key := [2]int{e.From, e.To}
		if seen[key] {
			t.Errorf("Duplicate pair emitted: (%d,%d)", e.From, e.To)
		}
		seen[key] = true
	}
}

// TestGenerate_WeightsInRange checks all weights lie in [1, MaxWeight]
func TestGenerate_WeightsInRange(t *testing.T) {
	p := Params{Nodes: 50, Edges: 300, MaxWeight: 5, Seed: 11}

	edges, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, e := range edges {
		if e.Weight < 1 || e.Weight > p.MaxWeight {
			t.Errorf("Weight %d outside [1, %d] on edge (%d,%d)", e.Weight, p.MaxWeight, e.From, e.To)
		}
	}
}

// TestGenerate_Deterministic verifies a fixed seed reproduces the sequence
func TestGenerate_Deterministic(t *testing.T) {
	p := Params{Nodes: 30, Edges: 150, MaxWeight: 999, Seed: 12345}

	first, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Same parameters produced different edge sequences")
	}
}

// TestGenerate_SmallScenario pins the nodes=3, edges=3 shape: backbone
// (0,1), (1,2) first, then one edge from the remaining valid pairs
func TestGenerate_SmallScenario(t *testing.T) {
	p := Params{Nodes: 3, Edges: 3, MaxWeight: 5, Seed: 1}

	edges, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(edges) != 3 {
		t.Fatalf("Expected 3 edges, got %d", len(edges))
	}

	if edges[0].From != 0 || edges[0].To != 1 {
		t.Errorf("First edge should be (0,1), got (%d,%d)", edges[0].From, edges[0].To)
	}
	if edges[1].From != 1 || edges[1].To != 2 {
		t.Errorf("Second edge should be (1,2), got (%d,%d)", edges[1].From, edges[1].To)
	}

	valid := map[[2]int]bool{
		{0, 2}: true,
		{2, 0}: true,
		{2, 1}: true,
		{1, 0}: true,
	}
	third := [2]int{edges[2].From, edges[2].To}
	if !valid[third] {
		t.Errorf("Third edge (%d,%d) is not one of the remaining valid pairs", third[0], third[1])
	}

	for _, e := range edges {
		if e.Weight < 1 || e.Weight > 5 {
			t.Errorf("Weight %d outside [1, 5]", e.Weight)
		}
	}
}

// TestGenerate_MaxDensity fills every possible pair
func TestGenerate_MaxDensity(t *testing.T) {
	p := Params{Nodes: 3, Edges: 6, MaxWeight: 10, Seed: 2}

	edges, err := Generate(p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(edges) != 6 {
		t.Fatalf("Expected 6 edges, got %d", len(edges))
	}

	seen := make(map[[2]int]bool)
	for _, e := range edges {
		seen[[2]int{e.From, e.To}] = true
	}
	for u := 0; u < 3; u++ {
		for v := 0; v < 3; v++ {
			if u == v {
				continue
			}
			if !seen[[2]int{u, v}] {
				t.Errorf("Pair (%d,%d) missing from fully dense graph", u, v)
			}
		}
	}
}

// TestStream_PropagatesCallbackError verifies streaming stops on error
func TestStream_PropagatesCallbackError(t *testing.T) {
	p := Params{Nodes: 10, Edges: 20, MaxWeight: 10, Seed: 4}
	sentinel := errors.New("sink full")

	calls := 0
	err := Stream(p, func(Edge) error {
		calls++
		if calls == 5 {
			return sentinel
		}
		return nil
	})

	if !errors.Is(err, sentinel) {
		t.Errorf("Expected callback error to propagate, got %v", err)
	}
	if calls != 5 {
		t.Errorf("Expected streaming to stop after 5 calls, got %d", calls)
	}
}

// TestValidate_Rejections covers the infeasible parameter combinations
func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"valid defaults", Params{Nodes: 50000, Edges: 300000, MaxWeight: 1000, Seed: 42}, false},
		{"minimum graph", Params{Nodes: 2, Edges: 1, MaxWeight: 1, Seed: 0}, false},
		{"single node", Params{Nodes: 1, Edges: 1, MaxWeight: 1, Seed: 0}, true},
		{"too few edges", Params{Nodes: 5, Edges: 0, MaxWeight: 1, Seed: 0}, true},
		{"too many edges", Params{Nodes: 3, Edges: 10, MaxWeight: 1, Seed: 0}, true},
		{"zero max weight", Params{Nodes: 5, Edges: 10, MaxWeight: 0, Seed: 0}, true},
		{"negative max weight", Params{Nodes: 5, Edges: 10, MaxWeight: -3, Seed: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("Expected ErrInvalidArgument, got %v", err)
				}
				if _, genErr := Generate(tt.params); genErr == nil {
					t.Error("Generate accepted invalid parameters")
				}
			} else if err != nil {
				t.Errorf("Validate failed on valid parameters: %v", err)
			}
		})
	}
}
