// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CogScale

package config

// Names of the environment variables holding the paths of the two optional
// JSON configuration files.
const (
	// PayloadFileEnv points at the payload file delivered at job invocation
	// time. It is the highest-priority file source.
	PayloadFileEnv = "PAYLOAD_FILE"

	// ConfigFileEnv points at the config file set at job deployment time.
	// It is consulted after the payload file.
	ConfigFileEnv = "CONFIG_FILE"
)

// Config holds the resolved Foundation API configuration. It is immutable
// once returned by [Resolve] and safe to share across goroutines.
//
// Struct tags:
//   - env  — direct environment variable name (caarlos0/env).
//   - json — field name inside the payload/config JSON files.
type Config struct {
	// APIRoot is the base URL of the Foundation API
	// (e.g. "https://api.cogscale.example").
	// Env: FOUNDATION_API_ROOT. JSON: foundation_api_root.
	APIRoot string `env:"FOUNDATION_API_ROOT" json:"foundation_api_root"`

	// APIKey is the static key sent in the X-CogScale-Key header on every
	// API request. Must be kept confidential.
	// Env: FOUNDATION_API_KEY. JSON: foundation_api_key.
	APIKey string `env:"FOUNDATION_API_KEY" json:"foundation_api_key"`
}

// Overrides carries explicit configuration values supplied by the caller.
// Non-empty fields take priority over every other source.
type Overrides struct {
	APIRoot string
	APIKey  string
}

// Resolve loads and merges the Foundation configuration from all available
// sources in the following priority order (first non-empty value wins):
//  1. overrides
//  2. Payload JSON file (PAYLOAD_FILE)
//  3. Config JSON file (CONFIG_FILE)
//  4. Environment variables
//
// Returns a fully populated *Config, or an error if a file source fails to
// parse or a required field is empty after merging.
func Resolve(overrides Overrides) (*Config, error) {
	return newResolver().
		withOverrides(overrides).
		withFile(PayloadFileEnv).
		withFile(ConfigFileEnv).
		withEnv().
		resolve()
}

// validate checks that the merged configuration satisfies the invariants
// required by the Foundation clients: both APIRoot and APIKey must be set.
func (cfg *Config) validate() error {
	if cfg.APIRoot == "" {
		return ErrAPIRootNotConfigured
	}

	if cfg.APIKey == "" {
		return ErrAPIKeyNotConfigured
	}

	return nil
}
