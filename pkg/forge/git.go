package forge

import (
	"context"

	"github.com/lerenn/issue-state/pkg/host"
	"github.com/lerenn/issue-state/pkg/issue"
)

const (
	// GitName is the name identifier for the GitLab and Gitea forge.
	GitName = "git"
)

// Git fetches issues and pull requests from GitLab (v4) and Gitea or
// Forgejo (v1) REST APIs, which share the same response shape.
type Git struct {
	requester
}

// NewGit creates a new GitLab and Gitea forge instance.
func NewGit(params NewManagerParams) *Git {
	return &Git{requester: newRequester(params.HTTPClient, params.Credentials, params.Logger)}
}

// Name returns the name of the forge.
func (g *Git) Name() string {
	return GitName
}

// Fetch fetches an issue, merge request or pull request.
func (g *Git) Fetch(ctx context.Context, h host.Host, fields host.Fields) (issue.Info, error) {
	endpoint, err := h.Endpoint(fields)
	if err != nil {
		return issue.Info{}, err
	}

	var data map[string]interface{}
	if err := g.getJSON(ctx, h, endpoint, &data); err != nil {
		return issue.Info{}, err
	}

	return Normalize(data)
}
