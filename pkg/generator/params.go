package generator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// Params describe one graph to generate. All four values together fully
// determine the output: the same Params always produce the identical
// edge sequence.
type Params struct {
	// Nodes is the number of nodes; ids run from 0 to Nodes-1.
	Nodes int `validate:"gte=2"`

	// Edges is the total number of directed edges to emit. Must be at
	// least Nodes-1 (the backbone) and at most Nodes*(Nodes-1), the
	// number of distinct directed pairs without self-loops. Checked in
	// Validate since the bounds depend on Nodes.
	Edges int

	// MaxWeight is the inclusive upper bound for edge weights.
	MaxWeight int64 `validate:"gt=0"`

	// Seed initializes the pseudo-random source.
	Seed int64
}

// MaxEdges returns the largest feasible edge count for the node count:
// every ordered pair of distinct nodes.
func (p Params) MaxEdges() int {
	return p.Nodes * (p.Nodes - 1)
}

// Validate checks all feasibility constraints. It returns an error
// wrapping ErrInvalidArgument describing the first violated constraint,
// or nil if generation can proceed.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return formatValidationError(err)
	}
	if p.Edges < p.Nodes-1 {
		return fmt.Errorf("%w: edges must be at least nodes-1 (%d) to keep the graph connected, got %d",
			ErrInvalidArgument, p.Nodes-1, p.Edges)
	}
	if maxEdges := p.MaxEdges(); p.Edges > maxEdges {
		return fmt.Errorf("%w: edges must be <= %d for %d nodes (no self-loops), got %d",
			ErrInvalidArgument, maxEdges, p.Nodes, p.Edges)
	}
	return nil
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, e := range validationErrs {
		switch e.Field() {
		case "Nodes":
			return fmt.Errorf("%w: nodes must be >= 2 to build an interesting graph, got %v",
				ErrInvalidArgument, e.Value())
		case "MaxWeight":
			return fmt.Errorf("%w: max weight must be positive, got %v",
				ErrInvalidArgument, e.Value())
		default:
			return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalidArgument, e.Field(), e.Tag())
		}
	}
	return err
}
