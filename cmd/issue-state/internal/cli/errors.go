package cli

import "errors"

// CLI errors.
var (
	ErrUnknownOutput    = errors.New("unknown output format")
	ErrResolutionFailed = errors.New("some URLs could not be resolved")
)
