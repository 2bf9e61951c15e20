package generator

import "errors"

// Common sentinel errors
var (
	// ErrInvalidArgument is returned when graph parameters violate a
	// feasibility constraint. Validation failures wrap this error, so
	// callers can test for it with errors.Is.
	ErrInvalidArgument = errors.New("invalid argument")
)
