// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves Elsevier credentials.
//
// Credentials come from, in priority order: values already resolved by the
// caller (flags, environment, config file), then a directory of plain-text
// files where each filename is a key and the trimmed contents are the value.
// Supported key files: elsevier-api-key, elsevier-inst-token.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Key file names inside the secrets directory.
const (
	APIKeyFile    = "elsevier-api-key"
	InstTokenFile = "elsevier-inst-token"
)

var (
	// ErrMissingCredential means no source supplied a required credential.
	ErrMissingCredential = errors.New("credential not set")

	// ErrMalformedCredential means a credential contains characters an
	// Elsevier key never does.
	ErrMalformedCredential = errors.New("credential malformed")
)

// credentialPattern matches Elsevier API keys and institution tokens,
// which are opaque alphanumeric strings.
var credentialPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ConfigurationError reports a missing or malformed credential. It is fatal
// and surfaced before any request is made.
type ConfigurationError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %v", e.Name, e.Err)
}

// Unwrap returns ErrMissingCredential or ErrMalformedCredential.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Credentials holds Elsevier authentication material.
type Credentials struct {
	// APIKey is sent as X-ELS-APIKey. Required.
	APIKey string

	// InstToken is sent as X-ELS-Insttoken. Optional.
	InstToken string
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning but do not abort.
func Load(dir string, log zerolog.Logger) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given .env files into the
// process environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Resolve fills empty fields of given from the files map (as returned by
// Load) and validates the result. A missing or malformed API key, or a
// malformed institution token, yields a *ConfigurationError.
func Resolve(given Credentials, files map[string]string) (Credentials, error) {
	c := Credentials{
		APIKey:    strings.TrimSpace(given.APIKey),
		InstToken: strings.TrimSpace(given.InstToken),
	}
	if c.APIKey == "" {
		c.APIKey = files[APIKeyFile]
	}
	if c.InstToken == "" {
		c.InstToken = files[InstTokenFile]
	}

	if c.APIKey == "" {
		return Credentials{}, &ConfigurationError{Name: "api key", Err: ErrMissingCredential}
	}
	if !credentialPattern.MatchString(c.APIKey) {
		return Credentials{}, &ConfigurationError{Name: "api key", Err: ErrMalformedCredential}
	}
	if c.InstToken != "" && !credentialPattern.MatchString(c.InstToken) {
		return Credentials{}, &ConfigurationError{Name: "institution token", Err: ErrMalformedCredential}
	}
	return c, nil
}
