package forge

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lerenn/issue-state/pkg/issue"
)

// Forge-specific errors.
var (
	ErrUnsupportedForge = fmt.Errorf("%w: unsupported forge", issue.ErrUnreachable)
	ErrNotFound         = errors.New("resource not found")
	ErrRateLimited      = errors.New("rate limited by forge API")
	ErrUnauthorized     = errors.New("unauthorized access to forge API")
	ErrRPC              = errors.New("json-rpc call failed")
)

// HTTPError is returned when a backend answers with a non-2xx status.
type HTTPError struct {
	StatusCode int
	URL        string
	// Kind is one of ErrNotFound, ErrUnauthorized, ErrRateLimited, or nil.
	Kind error
	// Err is the client library error, if any.
	Err error
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("HTTP status %d %s for url (%s)", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
	if e.Kind != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Kind)
	}
	return msg
}

// Unwrap exposes issue.ErrTransport, the status kind and the underlying cause.
func (e *HTTPError) Unwrap() []error {
	errs := []error{issue.ErrTransport}
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func newHTTPError(resp *http.Response, url string, cause error) *HTTPError {
	return &HTTPError{
		StatusCode: resp.StatusCode,
		URL:        url,
		Kind:       statusKind(resp),
		Err:        cause,
	}
}

func statusKind(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	case http.StatusForbidden:
		if resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return ErrRateLimited
		}
		return ErrUnauthorized
	default:
		return nil
	}
}
