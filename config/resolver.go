package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// resolver accumulates one *Config per source in priority order. Because
// mergo only fills zero-valued fields of the destination, merging the
// collected configs front to back makes the first non-empty value win.
type resolver struct {
	configs []*Config
	err     error
}

func newResolver() *resolver {
	return &resolver{
		configs: make([]*Config, 0, 4),
	}
}

func (r *resolver) resolve() (*Config, error) {
	if r.err != nil {
		return nil, fmt.Errorf("error occured during resolving config: %w", r.err)
	}

	config := new(Config)
	for _, cfg := range r.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (r *resolver) withOverrides(overrides Overrides) *resolver {
	r.configs = append(r.configs, &Config{
		APIRoot: overrides.APIRoot,
		APIKey:  overrides.APIKey,
	})
	return r
}

// withFile appends the JSON file whose path is held by the pathEnvVar
// environment variable. An unset variable or a missing file contributes an
// empty source; a file that exists but fails to parse aborts resolution.
func (r *resolver) withFile(pathEnvVar string) *resolver {
	fileCfg, err := parseJSONFromEnv(pathEnvVar)
	if err != nil {
		r.err = errors.Join(r.err, err)
		return r
	}

	r.configs = append(r.configs, fileCfg)
	return r
}

func (r *resolver) withEnv() *resolver {
	envCfg := &Config{}
	if err := parseEnv(envCfg); err != nil {
		r.err = errors.Join(r.err, err)
		return r
	}

	r.configs = append(r.configs, envCfg)
	return r
}
