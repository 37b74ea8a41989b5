// Package dependencies provides a centralized dependency container for issue-state.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"
	"net/http"

	"github.com/99designs/keyring"

	"github.com/lerenn/issue-state/pkg/config"
	"github.com/lerenn/issue-state/pkg/credential"
	"github.com/lerenn/issue-state/pkg/forge"
	"github.com/lerenn/issue-state/pkg/logger"
	"github.com/lerenn/issue-state/pkg/resolver"
)

// Validation errors for missing dependencies.
var (
	ErrConfigMissing      = errors.New("config dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrHTTPClientMissing  = errors.New("http client dependency is required but not set")
	ErrCredentialsMissing = errors.New("credentials dependency is required but not set")
)

// KeyringOpener opens the system keyring for a service.
type KeyringOpener func(service string) (keyring.Keyring, error)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	Config        config.Manager
	Logger        logger.Logger
	HTTPClient    *http.Client
	Credentials   credential.Lookup
	Forges        forge.ManagerInterface
	KeyringOpener KeyringOpener
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		Logger:        logger.NewNoopLogger(),
		HTTPClient:    http.DefaultClient,
		Credentials:   credential.Env(),
		KeyringOpener: credential.OpenKeyring,
		// Config is left nil: its path comes from the caller.
	}
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(l logger.Logger) *Dependencies {
	d.Logger = l
	return d
}

// WithHTTPClient sets the HTTP client and returns the instance for chaining.
func (d *Dependencies) WithHTTPClient(client *http.Client) *Dependencies {
	d.HTTPClient = client
	return d
}

// WithCredentials sets the credential lookup and returns the instance for chaining.
func (d *Dependencies) WithCredentials(lookup credential.Lookup) *Dependencies {
	d.Credentials = lookup
	return d
}

// WithForges sets the forge manager and returns the instance for chaining.
func (d *Dependencies) WithForges(forges forge.ManagerInterface) *Dependencies {
	d.Forges = forges
	return d
}

// WithKeyringOpener sets how the system keyring is opened and returns the instance for chaining.
func (d *Dependencies) WithKeyringOpener(opener KeyringOpener) *Dependencies {
	d.KeyringOpener = opener
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.Config == nil, ErrConfigMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.HTTPClient == nil, ErrHTTPClientMissing},
		{d.Credentials == nil, ErrCredentialsMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}

// Resolver loads the configuration with fallback and builds a resolver from it.
// Configured tokens and the keyring, when enabled, are chained after
// Credentials. Forges default to a manager over HTTPClient.
func (d *Dependencies) Resolver() (resolver.Resolver, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	cfg, err := d.Config.GetConfigWithFallback()
	if err != nil {
		return nil, err
	}

	forges := d.Forges
	if forges == nil {
		forges = forge.NewManager(forge.NewManagerParams{
			HTTPClient:  d.HTTPClient,
			Credentials: d.credentials(cfg),
			Logger:      d.Logger,
		})
	}

	return resolver.NewResolver(resolver.NewResolverParams{
		Forges:      forges,
		Logger:      d.Logger,
		Concurrency: cfg.Concurrency,
	})
}

func (d *Dependencies) credentials(cfg config.Config) credential.Lookup {
	lookups := []credential.Lookup{d.Credentials, credential.Map(cfg.Tokens)}

	if cfg.Keyring.Enabled && d.KeyringOpener != nil {
		ring, err := d.KeyringOpener(cfg.Keyring.Service)
		if err != nil {
			d.Logger.Logf("Skipping keyring: %v", err)
		} else {
			lookups = append(lookups, credential.Keyring(ring, func(key string, err error) {
				d.Logger.Logf("Keyring lookup of %s failed: %v", key, err)
			}))
		}
	}

	return credential.Chain(lookups...)
}
