// Package config provides configuration management functionality for issue-state.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/issue-state/configs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	InitConfig(force bool) error
	GetConfigPath() string
	DefaultConfig() Config
}

type realManager struct {
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string) Manager {
	return &realManager{
		configPath: configPath,
	}
}

// DefaultConfigPath returns ~/.issue-state/config.yaml.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".issue-state", "config.yaml")
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	data, err := os.ReadFile(c.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	} else if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := parse(data)
	if err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to the default
// only when the file does not exist. A malformed file is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if errors.Is(err, ErrConfigNotInitialized) {
		return c.DefaultConfig(), nil
	}
	return config, err
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	return c.write(data)
}

// InitConfig writes the embedded default configuration to the config path.
func (c *realManager) InitConfig(force bool) error {
	if _, err := os.Stat(c.configPath); err == nil && !force {
		return fmt.Errorf("%w: %s", ErrConfigAlreadyExists, c.configPath)
	}

	return c.write(configs.DefaultConfigYAML)
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration parsed from the embedded file.
func (c *realManager) DefaultConfig() Config {
	config, err := parse(configs.DefaultConfigYAML)
	if err != nil {
		return Config{Keyring: Keyring{Service: "issue-state"}}
	}
	return config
}

func (c *realManager) write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Tokens may be stored in the file.
	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

func parse(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	return config, nil
}
