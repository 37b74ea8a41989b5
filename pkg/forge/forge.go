// Package forge fetches issues, pull requests and bug reports from the
// supported backends and normalizes them into issue.Info values.
package forge

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lerenn/issue-state/pkg/credential"
	"github.com/lerenn/issue-state/pkg/host"
	"github.com/lerenn/issue-state/pkg/issue"
	"github.com/lerenn/issue-state/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Forge interface defines the methods that all backend implementations must provide.
type Forge interface {
	// Name returns the name of the forge
	Name() string

	// Fetch retrieves the resource described by fields from h and normalizes it
	Fetch(ctx context.Context, h host.Host, fields host.Fields) (issue.Info, error)
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForge returns the forge implementation serving the given provider
	GetForge(provider host.Provider) (Forge, error)
}

// NewManagerParams contains parameters for creating a new Manager.
type NewManagerParams struct {
	HTTPClient  *http.Client
	Credentials credential.Lookup
	Logger      logger.Logger
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[host.Provider]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with registered forge implementations.
func NewManager(params NewManagerParams) *Manager {
	r := newRequester(params.HTTPClient, params.Credentials, params.Logger)

	m := &Manager{
		forges: make(map[host.Provider]Forge),
		logger: r.logger,
	}

	m.registerForges(r)

	return m
}

// registerForges registers all available forge implementations.
func (m *Manager) registerForges(r requester) {
	github := newGitHub(r)
	m.forges[host.ProviderGitHub] = github

	git := &Git{requester: r}
	m.forges[host.ProviderGitLab] = git
	m.forges[host.ProviderGitea] = git

	bugzilla := &Bugzilla{requester: r}
	m.forges[host.ProviderBugzilla] = bugzilla
	m.forges[host.ProviderBugzillaJSONRPC] = bugzilla
}

// GetForge returns the forge implementation for the given provider.
func (m *Manager) GetForge(provider host.Provider) (Forge, error) {
	forge, exists := m.forges[provider]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, provider)
	}
	return forge, nil
}
