package forge

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/issue-state/pkg/host"
	"github.com/lerenn/issue-state/pkg/issue"
)

const (
	// GitHubName is the name identifier for GitHub forge.
	GitHubName = "github"
)

// GitHub represents the GitHub forge implementation.
type GitHub struct {
	client *github.Client
	requester
}

// NewGitHub creates a new GitHub forge instance.
func NewGitHub(params NewManagerParams) *GitHub {
	return newGitHub(newRequester(params.HTTPClient, params.Credentials, params.Logger))
}

func newGitHub(r requester) *GitHub {
	client := github.NewClient(r.client)
	client.UserAgent = UserAgent

	return &GitHub{
		client:    client,
		requester: r,
	}
}

// Name returns the name of the forge.
func (g *GitHub) Name() string {
	return GitHubName
}

// Fetch fetches an issue or pull request from the GitHub REST API.
func (g *GitHub) Fetch(ctx context.Context, h host.Host, fields host.Fields) (issue.Info, error) {
	endpoint, err := h.Endpoint(fields)
	if err != nil {
		return issue.Info{}, err
	}

	client := g.client
	if token, ok := g.token(h); ok {
		client = client.WithAuthToken(token)
	}

	req, err := client.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return issue.Info{}, fmt.Errorf("%w: %w", issue.ErrInvalidURL, err)
	}

	g.logger.Logf("Requesting %s from %s", endpoint, h)

	var data map[string]interface{}
	resp, err := client.Do(ctx, req, &data)
	if err != nil {
		return issue.Info{}, g.handleGitHubError(err, resp, endpoint)
	}

	return Normalize(data)
}

// handleGitHubError converts GitHub client errors into transport errors.
func (g *GitHub) handleGitHubError(err error, resp *github.Response, endpoint string) error {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &HTTPError{
			StatusCode: rateLimitErr.Response.StatusCode,
			URL:        endpoint,
			Kind:       ErrRateLimited,
			Err:        err,
		}
	}

	if resp != nil && resp.Response != nil &&
		(resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices) {
		return newHTTPError(resp.Response, endpoint, err)
	}

	return fmt.Errorf("%w: %w", issue.ErrTransport, err)
}
