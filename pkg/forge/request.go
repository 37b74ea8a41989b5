package forge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/lerenn/issue-state/pkg/credential"
	"github.com/lerenn/issue-state/pkg/host"
	"github.com/lerenn/issue-state/pkg/issue"
	"github.com/lerenn/issue-state/pkg/logger"
)

// UserAgent is sent with every request. Some APIs reject the default user
// agents of HTTP client libraries.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:110.0) Gecko/20100101 Firefox/110.0"

// requester issues authenticated GET requests against JSON APIs.
type requester struct {
	client      *http.Client
	credentials credential.Lookup
	logger      logger.Logger
}

func newRequester(client *http.Client, credentials credential.Lookup, l logger.Logger) requester {
	if client == nil {
		client = &http.Client{}
	}
	if credentials == nil {
		credentials = credential.None()
	}
	if l == nil {
		l = logger.NewNoopLogger()
	}
	return requester{client: client, credentials: credentials, logger: l}
}

// token returns the bearer token configured for h, if any.
func (r requester) token(h host.Host) (string, bool) {
	key := h.TokenKey()
	if key == "" {
		return "", false
	}
	return r.credentials(key)
}

// getJSON fetches endpoint and decodes the response body into out.
func (r requester) getJSON(ctx context.Context, h host.Host, endpoint string, out interface{}) error {
	r.logger.Logf("Requesting %s from %s", endpoint, h)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", issue.ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	if token, ok := r.token(h); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", issue.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return newHTTPError(resp, endpoint, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", issue.ErrTransport, err)
	}

	return nil
}
