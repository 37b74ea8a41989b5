package config

// Config represents the application configuration.
type Config struct {
	// Tokens holds API tokens keyed by credential name (GITHUB_TOKEN, ...).
	Tokens map[string]string `yaml:"tokens,omitempty"`
	// Concurrency caps in-flight resolutions in a batch. Zero means unbounded.
	Concurrency int `yaml:"concurrency"`
	// Keyring configures the system keyring credential source.
	Keyring Keyring `yaml:"keyring"`
}

// Keyring configures the system keyring credential source.
type Keyring struct {
	Enabled bool   `yaml:"enabled"`
	Service string `yaml:"service"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.Concurrency < 0 {
		return ErrNegativeConcurrency
	}

	if c.Keyring.Enabled && c.Keyring.Service == "" {
		return ErrKeyringServiceEmpty
	}

	return nil
}
