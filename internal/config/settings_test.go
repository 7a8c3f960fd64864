package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	cfg, err := LoadSettings("", MapLookup(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), cfg)
}

func TestLoadSettingsFromYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "minigrep.yaml", `
env: "prod"
log_level: "debug"
log_file: "/tmp/minigrep/app.log"
`)

	cfg, err := LoadSettings(path, MapLookup(nil))
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/minigrep/app.log", cfg.LogFile)
}

func TestLoadSettingsPathFromEnvironment(t *testing.T) {
	path := writeFile(t, t.TempDir(), "minigrep.yaml", "log_level: info\n")

	cfg, err := LoadSettings("", MapLookup(map[string]string{ConfigPathEnv: path}))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "local", cfg.Env, "keys missing from the file keep defaults")
}

func TestLoadSettingsEnvironmentOverrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "minigrep.yaml", "env: local\nlog_level: info\n")
	lookup := MapLookup(map[string]string{
		EnvNameEnv:  "prod",
		LogLevelEnv: "error",
	})

	cfg, err := LoadSettings(path, lookup)
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadSettingsErrors(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"), MapLookup(nil))
	assert.ErrorIs(t, err, ErrConfig)

	bad := writeFile(t, t.TempDir(), "bad.yaml", "env: [unterminated\n")
	_, err = LoadSettings(bad, MapLookup(nil))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoadSettingsRejectsUnknownLevel(t *testing.T) {
	_, err := LoadSettings("", MapLookup(map[string]string{LogLevelEnv: "loud"}))
	assert.ErrorIs(t, err, ErrConfig)
}
