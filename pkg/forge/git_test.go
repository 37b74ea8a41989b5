//go:build unit

package forge

import (
	"context"
	"testing"

	"github.com/lerenn/issue-state/internal/fixture"
	"github.com/lerenn/issue-state/pkg/credential"
	"github.com/lerenn/issue-state/pkg/host"
	"github.com/lerenn/issue-state/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGit_Fetch(t *testing.T) {
	server, client := fixture.New(t, map[string]fixture.Response{
		"gitlab.com/api/v4/projects/simple-nixos-mailserver%2Fnixos-mailserver/issues/279": {
			Body: `{"title":"OpenDKIM rights problem","state":"opened"}`,
		},
		"gitlab.com/api/v4/projects/simple-nixos-mailserver%2Fnixos-mailserver/merge_requests/319": {
			Body: `{"title":"dovecot: support new sieve API in nixpkgs","state":"merged"}`,
		},
		"codeberg.org/api/v1/repos/dnkl/foot/pulls/1640": {
			Body: `{"title":"sixel: trim trailing, fully transparent sixel rows","state":"closed","merged":true}`,
		},
		"codeberg.org/api/v1/repos/dnkl/foot/pulls/1700": {
			Body: `{"title":"wip: something","state":"open","merged":false}`,
		},
		"projects.blender.org/api/v1/repos/blender/blender/issues/35100": {
			Body: `{"title":"Dynamic Sculpting: Inflate Brush artifacts --- could freeze blender","state":"open"}`,
		},
	})

	git := NewGit(NewManagerParams{
		HTTPClient:  client,
		Credentials: credential.Map(map[string]string{"PROJECTSBLENDERORG_TOKEN": "blender"}),
	})

	tests := []struct {
		name      string
		host      host.Host
		fields    host.Fields
		expected  issue.Info
		wantToken string
	}{
		{
			name:     "gitlab issue",
			host:     host.New(host.ProviderGitLab, "gitlab.com"),
			fields:   host.Fields{Owner: "simple-nixos-mailserver", Repo: "nixos-mailserver", Kind: "issues", Number: "279"},
			expected: issue.Info{Title: "OpenDKIM rights problem", State: issue.StateOpen},
		},
		{
			name:     "gitlab merge request",
			host:     host.New(host.ProviderGitLab, "gitlab.com"),
			fields:   host.Fields{Owner: "simple-nixos-mailserver", Repo: "nixos-mailserver", Kind: "merge_requests", Number: "319"},
			expected: issue.Info{Title: "dovecot: support new sieve API in nixpkgs", State: issue.StateMerged},
		},
		{
			name:     "codeberg merged pull",
			host:     host.New(host.ProviderGitea, "codeberg.org"),
			fields:   host.Fields{Owner: "dnkl", Repo: "foot", Kind: "pulls", Number: "1640"},
			expected: issue.Info{Title: "sixel: trim trailing, fully transparent sixel rows", State: issue.StateMerged},
		},
		{
			name:     "codeberg wip pull",
			host:     host.New(host.ProviderGitea, "codeberg.org"),
			fields:   host.Fields{Owner: "dnkl", Repo: "foot", Kind: "pulls", Number: "1700"},
			expected: issue.Info{Title: "wip: something", State: issue.StateDraft},
		},
		{
			name:      "self-hosted gitea with token",
			host:      host.New(host.ProviderGitea, "projects.blender.org"),
			fields:    host.Fields{Owner: "blender", Repo: "blender", Kind: "issues", Number: "35100"},
			expected:  issue.Info{Title: "Dynamic Sculpting: Inflate Brush artifacts --- could freeze blender", State: issue.StateOpen},
			wantToken: "Bearer blender",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := git.Fetch(context.Background(), tt.host, tt.fields)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, info)

			req := server.LastRequest()
			require.NotNil(t, req)
			assert.Equal(t, UserAgent, req.Header.Get("User-Agent"))
			assert.Equal(t, tt.wantToken, req.Header.Get("Authorization"))
		})
	}
}

func TestGit_Fetch_Errors(t *testing.T) {
	_, client := fixture.New(t, map[string]fixture.Response{
		"gitlab.com/api/v4/projects/o%2Fr/issues/1": {Body: `{"state":"opened"}`},
		"gitlab.com/api/v4/projects/o%2Fr/issues/2": {Body: `not json`},
		"gitlab.com/api/v4/projects/o%2Fr/issues/3": {Status: 500, Body: `{}`},
	})

	git := NewGit(NewManagerParams{HTTPClient: client})
	h := host.New(host.ProviderGitLab, "gitlab.com")
	fields := func(number string) host.Fields {
		return host.Fields{Owner: "o", Repo: "r", Kind: "issues", Number: number}
	}

	_, err := git.Fetch(context.Background(), h, fields("1"))
	assert.ErrorIs(t, err, issue.ErrFailedMatch)

	_, err = git.Fetch(context.Background(), h, fields("2"))
	assert.ErrorIs(t, err, issue.ErrTransport)

	_, err = git.Fetch(context.Background(), h, fields("3"))
	assert.ErrorIs(t, err, issue.ErrTransport)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 500, httpErr.StatusCode)
	assert.Nil(t, httpErr.Kind)

	_, err = git.Fetch(context.Background(), h, fields("4"))
	assert.ErrorIs(t, err, ErrNotFound)
}
