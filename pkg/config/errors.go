package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrNegativeConcurrency = errors.New("concurrency cannot be negative")
	ErrKeyringServiceEmpty = errors.New("keyring service cannot be empty when the keyring is enabled")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("configuration not found. Run 'issue-state init' to initialize")
	ErrConfigAlreadyExists  = errors.New("configuration already exists")
)
