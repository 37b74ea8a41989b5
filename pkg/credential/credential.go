// Package credential looks up API tokens by key from pluggable sources.
//
// Sources are plain functions so callers and tests can inject fixed or absent
// credentials without touching the process environment. A missing key is not
// an error: requests then proceed anonymously.
package credential

import (
	"errors"
	"fmt"
	"os"

	"github.com/99designs/keyring"
)

// Lookup returns the value stored under key and whether it was found.
type Lookup func(key string) (string, bool)

// Env looks keys up in the process environment. Empty values count as absent.
func Env() Lookup {
	return func(key string) (string, bool) {
		value, ok := os.LookupEnv(key)
		return value, ok && value != ""
	}
}

// Map looks keys up in a fixed map. Empty values count as absent.
func Map(values map[string]string) Lookup {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok && value != ""
	}
}

// None never finds anything.
func None() Lookup {
	return func(string) (string, bool) { return "", false }
}

// Chain returns the first value found by lookups, in order.
func Chain(lookups ...Lookup) Lookup {
	return func(key string) (string, bool) {
		for _, lookup := range lookups {
			if lookup == nil {
				continue
			}
			if value, ok := lookup(key); ok {
				return value, true
			}
		}
		return "", false
	}
}

// Keyring looks keys up in a system keyring. Errors other than a missing key
// are reported through onError, when set, and treated as absence.
func Keyring(ring keyring.Keyring, onError func(key string, err error)) Lookup {
	return func(key string) (string, bool) {
		item, err := ring.Get(key)
		if err != nil {
			if !errors.Is(err, keyring.ErrKeyNotFound) && onError != nil {
				onError(key, err)
			}
			return "", false
		}
		return string(item.Data), len(item.Data) > 0
	}
}

// OpenKeyring opens the system keyring for service.
func OpenKeyring(service string) (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: service,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
		},
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyringUnavailable, err)
	}
	return ring, nil
}
