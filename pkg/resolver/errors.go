package resolver

import "errors"

// Resolver-specific errors.
var (
	ErrForgesMissing = errors.New("forge manager dependency is required but not set")
)
