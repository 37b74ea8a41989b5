package pattern

import "errors"

// Error definitions for pattern package.
var (
	// ErrNoMatch is returned when an input does not fit the template shape.
	ErrNoMatch = errors.New("input does not match pattern")
)
