// Package cli holds the global flags and wiring shared by the issue-state commands.
package cli

import (
	"github.com/lerenn/issue-state/pkg/config"
	"github.com/lerenn/issue-state/pkg/dependencies"
	"github.com/lerenn/issue-state/pkg/logger"
	"github.com/lerenn/issue-state/pkg/resolver"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
	// Output selects the output format.
	Output = OutputText

	// NewDependencies returns the base dependency container. Tests replace it.
	NewDependencies = dependencies.New
)

// NewConfigManager creates a config manager for the selected config path.
func NewConfigManager() config.Manager {
	path := ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.NewManager(path)
}

// NewResolver creates a resolver wired from the configuration.
func NewResolver() (resolver.Resolver, error) {
	deps := NewDependencies().WithConfig(NewConfigManager())
	if Verbose {
		deps = deps.WithLogger(logger.NewVerboseLogger())
	}
	return deps.Resolver()
}
