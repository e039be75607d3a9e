package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10, cfg.Fetch.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Fetch.MaxRetries)
	assert.Equal(t, []string{"http", "https"}, cfg.Fetch.AllowedURLSchemes)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "badgecheck.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n\n[fetch]\nmax_retries = 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 7, cfg.Fetch.MaxRetries)
	assert.Equal(t, 10, cfg.Fetch.TimeoutSeconds, "unset fields keep their default")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "badgecheck.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644))
	t.Setenv("BADGECHECK_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "badgecheck.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"verbose\"\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
