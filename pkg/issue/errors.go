package issue

import "errors"

// Error definitions shared by every resolution step.
var (
	// URL errors.
	ErrInvalidURL  = errors.New("could not parse given url")
	ErrUnknownHost = errors.New("failed to auto-detect host")

	// Extraction errors.
	ErrNoMatch      = errors.New("failed to match the link")
	ErrFailedMatch  = errors.New("failed to match the response")
	ErrUnknownState = errors.New("failed to pattern match received state")

	// Transport errors.
	ErrTransport = errors.New("request failed")

	// ErrUnreachable marks an internal invariant violation.
	ErrUnreachable = errors.New("entered unreachable code")
)
