// Package host maps domain names to the service backends able to describe
// issues and pull requests hosted on them, and builds the API endpoints
// those backends expose.
package host

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/lerenn/issue-state/pkg/issue"
	"github.com/lerenn/issue-state/pkg/pattern"
)

// Provider identifies the kind of backend behind a domain.
type Provider int

// Supported providers.
const (
	ProviderGitHub Provider = iota
	ProviderGitLab
	// ProviderGitea also covers Forgejo and Codeberg.
	ProviderGitea
	ProviderBugzilla
	// ProviderBugzillaJSONRPC targets Bugzilla 4.x instances without the REST API.
	ProviderBugzillaJSONRPC
)

// Known domains.
const (
	GitHubDomain      = "github.com"
	GitHubAPIDomain   = "api.github.com"
	GitLabDomain      = "gitlab.com"
	CodebergDomain    = "codeberg.org"
	FreedesktopDomain = "gitlab.freedesktop.org"
	WineHQDomain      = "bugs.winehq.org"
)

// Path templates.
const (
	RepoPattern       = "/:owner/:repo/:kind/:number"
	GitLabRepoPattern = "/:owner/:repo/-/:kind/:number"
	BugzillaPattern   = "/show_bug.cgi?id=:number"
)

var providerNames = map[Provider]string{
	ProviderGitHub:          "github",
	ProviderGitLab:          "gitlab",
	ProviderGitea:           "gitea",
	ProviderBugzilla:        "bugzilla",
	ProviderBugzillaJSONRPC: "bugzilla-jsonrpc",
}

// String returns the provider name.
func (p Provider) String() string {
	if name, ok := providerNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Provider(%d)", int(p))
}

// IsBugTracker reports whether the provider is an issue-only bug tracker.
func (p Provider) IsBugTracker() bool {
	return p == ProviderBugzilla || p == ProviderBugzillaJSONRPC
}

// Host is a resolved backend. Domain is empty for GitHub.
type Host struct {
	Provider Provider
	Domain   string
}

// Fields are the values extracted from a web URL. Owner, Repo and Kind are
// empty for bug trackers.
type Fields struct {
	Owner  string `pattern:"owner"`
	Repo   string `pattern:"repo"`
	Kind   string `pattern:"kind"`
	Number string `pattern:"number"`
}

type bugFields struct {
	Number string `pattern:"number"`
}

// Resolve returns the host for a supported domain.
func Resolve(domain string) (Host, error) {
	switch domain {
	case GitHubDomain:
		return Host{Provider: ProviderGitHub}, nil
	case CodebergDomain:
		return New(ProviderGitea, domain), nil
	case GitLabDomain, FreedesktopDomain:
		return New(ProviderGitLab, domain), nil
	case WineHQDomain:
		return New(ProviderBugzillaJSONRPC, domain), nil
	default:
		return Host{}, fmt.Errorf("%w: %q", issue.ErrUnknownHost, domain)
	}
}

// New builds a host for an explicit provider, typically a self-hosted instance
// that Resolve does not know about. The domain is ignored for GitHub.
func New(provider Provider, domain string) Host {
	if provider == ProviderGitHub {
		return Host{Provider: provider}
	}
	return Host{Provider: provider, Domain: domain}
}

// String returns a readable description of the host.
func (h Host) String() string {
	if h.Domain == "" {
		return h.Provider.String()
	}
	return fmt.Sprintf("%s(%s)", h.Provider, h.Domain)
}

// Pattern returns the web URL template for the host.
func (h Host) Pattern() string {
	switch h.Provider {
	case ProviderGitLab:
		return GitLabRepoPattern
	case ProviderBugzilla, ProviderBugzillaJSONRPC:
		return BugzillaPattern
	default:
		return RepoPattern
	}
}

// TokenKey returns the credential key for the host, or an empty string when
// the backend is always queried anonymously.
func (h Host) TokenKey() string {
	switch {
	case h.Provider == ProviderGitHub:
		return "GITHUB_TOKEN"
	case h.Provider == ProviderGitLab && h.Domain == GitLabDomain:
		return "GITLAB_TOKEN"
	case h.Provider == ProviderGitea && h.Domain == CodebergDomain:
		return "CODEBERG_TOKEN"
	case h.Provider.IsBugTracker():
		return ""
	default:
		return strings.ToUpper(strings.ReplaceAll(h.Domain, ".", "")) + "_TOKEN"
	}
}

// Extract matches the web URL against the host pattern.
func (h Host) Extract(u *url.URL) (Fields, error) {
	if h.Provider.IsBugTracker() {
		var fields bugFields
		input := u.Path + "?" + u.RawQuery
		if err := pattern.Decode(h.Pattern(), input, &fields); err != nil {
			return Fields{}, fmt.Errorf("%w: %w", issue.ErrNoMatch, err)
		}
		return Fields{Number: fields.Number}, nil
	}

	var fields Fields
	if err := pattern.Decode(h.Pattern(), u.Path, &fields); err != nil {
		return Fields{}, fmt.Errorf("%w: %w", issue.ErrNoMatch, err)
	}
	return fields, nil
}
