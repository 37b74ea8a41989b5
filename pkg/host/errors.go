package host

import (
	"fmt"

	"github.com/lerenn/issue-state/pkg/issue"
)

// Host-specific errors.
var (
	ErrUnsupportedProvider = fmt.Errorf("%w: unsupported provider", issue.ErrUnreachable)
	ErrInvalidEndpoint     = fmt.Errorf("%w: cannot build endpoint", issue.ErrInvalidURL)
)
