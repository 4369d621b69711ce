package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	t.Setenv(PayloadFileEnv, "")
	t.Setenv(ConfigFileEnv, "")
	t.Setenv("FOUNDATION_API_ROOT", "")
	t.Setenv("FOUNDATION_API_KEY", "")
}

// ── newResolver ───────────────────────────────────────────────────────────────

// TestNewResolver_InitialState verifies that a freshly created resolver has
// no error and an empty configs slice.
func TestNewResolver_InitialState(t *testing.T) {
	r := newResolver()
	require.NotNil(t, r)
	assert.NoError(t, r.err)
	assert.Empty(t, r.configs)
}

// ── resolve ───────────────────────────────────────────────────────────────────

// TestResolve_PropagatesResolverError verifies that a pre-set r.err is
// wrapped and returned, with nil config.
func TestResolve_PropagatesResolverError(t *testing.T) {
	r := newResolver()
	r.err = assert.AnError

	cfg, err := r.resolve()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestResolve_FirstNonEmptyWins verifies that earlier sources shadow later
// ones per field while empty fields fall through.
func TestResolve_FirstNonEmptyWins(t *testing.T) {
	r := newResolver()
	r.configs = append(r.configs,
		&Config{APIRoot: "https://first.example"},
		&Config{APIRoot: "https://second.example", APIKey: "second-key"},
	)

	cfg, err := r.resolve()
	require.NoError(t, err)
	assert.Equal(t, "https://first.example", cfg.APIRoot)
	assert.Equal(t, "second-key", cfg.APIKey)
}

// ── Resolve source priority ──────────────────────────────────────────────────

// TestResolve_OverridesBeatEverything verifies that explicit overrides win
// over both files and the environment.
func TestResolve_OverridesBeatEverything(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(PayloadFileEnv, writeTempJSONConfig(t, map[string]string{
		"foundation_api_root": "https://payload.example",
		"foundation_api_key":  "payload-key",
	}))
	t.Setenv(ConfigFileEnv, writeTempJSONConfig(t, map[string]string{
		"foundation_api_root": "https://config.example",
		"foundation_api_key":  "config-key",
	}))
	t.Setenv("FOUNDATION_API_ROOT", "https://env.example")
	t.Setenv("FOUNDATION_API_KEY", "env-key")

	cfg, err := Resolve(Overrides{APIRoot: "https://override.example", APIKey: "override-key"})
	require.NoError(t, err)
	assert.Equal(t, "https://override.example", cfg.APIRoot)
	assert.Equal(t, "override-key", cfg.APIKey)
}

// TestResolve_PayloadBeatsConfigAndEnv verifies the payload file shadows the
// config file and the environment when no override is given.
func TestResolve_PayloadBeatsConfigAndEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(PayloadFileEnv, writeTempJSONConfig(t, map[string]string{
		"foundation_api_root": "https://payload.example",
		"foundation_api_key":  "payload-key",
	}))
	t.Setenv(ConfigFileEnv, writeTempJSONConfig(t, map[string]string{
		"foundation_api_root": "https://config.example",
		"foundation_api_key":  "config-key",
	}))
	t.Setenv("FOUNDATION_API_ROOT", "https://env.example")
	t.Setenv("FOUNDATION_API_KEY", "env-key")

	cfg, err := Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "https://payload.example", cfg.APIRoot)
	assert.Equal(t, "payload-key", cfg.APIKey)
}

// TestResolve_ConfigFileBeatsEnv verifies the config file shadows the
// environment.
func TestResolve_ConfigFileBeatsEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(ConfigFileEnv, writeTempJSONConfig(t, map[string]string{
		"foundation_api_root": "https://config.example",
		"foundation_api_key":  "config-key",
	}))
	t.Setenv("FOUNDATION_API_ROOT", "https://env.example")
	t.Setenv("FOUNDATION_API_KEY", "env-key")

	cfg, err := Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "https://config.example", cfg.APIRoot)
	assert.Equal(t, "config-key", cfg.APIKey)
}

// TestResolve_EnvAsLastResort verifies that the environment supplies values
// when every higher-priority source is empty.
func TestResolve_EnvAsLastResort(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("FOUNDATION_API_ROOT", "https://env.example")
	t.Setenv("FOUNDATION_API_KEY", "env-key")

	cfg, err := Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.APIRoot)
	assert.Equal(t, "env-key", cfg.APIKey)
}

// TestResolve_MixedSourcesPerField verifies that priority is applied per
// field, not per source: the override supplies the root while the config
// file supplies the key.
func TestResolve_MixedSourcesPerField(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(ConfigFileEnv, writeTempJSONConfig(t, map[string]string{
		"foundation_api_key": "config-key",
	}))

	cfg, err := Resolve(Overrides{APIRoot: "https://override.example"})
	require.NoError(t, err)
	assert.Equal(t, "https://override.example", cfg.APIRoot)
	assert.Equal(t, "config-key", cfg.APIKey)
}

// ── Resolve validation ───────────────────────────────────────────────────────

// TestResolve_MissingAPIRoot verifies that an unresolvable api root fails
// resolution with the sentinel error.
func TestResolve_MissingAPIRoot(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("FOUNDATION_API_KEY", "env-key")

	cfg, err := Resolve(Overrides{})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPIRootNotConfigured)
}

// TestResolve_MissingAPIKey verifies that an unresolvable api key fails
// resolution with the sentinel error.
func TestResolve_MissingAPIKey(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("FOUNDATION_API_ROOT", "https://env.example")

	cfg, err := Resolve(Overrides{})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAPIKeyNotConfigured)
}

// ── file sources ─────────────────────────────────────────────────────────────

// TestResolve_MissingFileIsEmptySource verifies that a path pointing at a
// nonexistent file is treated as an empty mapping, not an error.
func TestResolve_MissingFileIsEmptySource(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv(PayloadFileEnv, filepath.Join(t.TempDir(), "does-not-exist.json"))
	t.Setenv("FOUNDATION_API_ROOT", "https://env.example")
	t.Setenv("FOUNDATION_API_KEY", "env-key")

	cfg, err := Resolve(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "https://env.example", cfg.APIRoot)
}

// TestResolve_MalformedFilePropagates verifies that a file that exists but
// is not valid JSON aborts resolution.
func TestResolve_MalformedFilePropagates(t *testing.T) {
	clearConfigEnv(t)
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))
	t.Setenv(PayloadFileEnv, p)
	t.Setenv("FOUNDATION_API_ROOT", "https://env.example")
	t.Setenv("FOUNDATION_API_KEY", "env-key")

	cfg, err := Resolve(Overrides{})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
