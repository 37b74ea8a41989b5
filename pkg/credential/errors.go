package credential

import "errors"

// Credential-specific errors.
var (
	ErrKeyringUnavailable = errors.New("keyring unavailable")
)
