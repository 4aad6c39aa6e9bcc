package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsAndFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jwt:
  secret: file-secret
mongo:
  database: vinculatec_test
cleanup:
  purge_after: 96h
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "vinculatec_test", cfg.Mongo.Database)
	assert.Equal(t, 96*time.Hour, cfg.CleanupPurgeAfter())

	// Untouched values keep their defaults.
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.CleanupInterval())
	assert.Equal(t, "local", cfg.Media.Mode)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jwt:
  secret: file-secret
server:
  port: "9000"
smtp:
  port: 25
`), 0o644))

	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USE_TLS", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.UseTLS)
}

func TestLoadConfigValidation(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing JWT secret", func(t *testing.T) {
		path := filepath.Join(dir, "nosecret.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"8080\"\n"), 0o644))

		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "JWT secret")
	})

	t.Run("http media mode requires a base URL", func(t *testing.T) {
		path := filepath.Join(dir, "media.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
jwt:
  secret: s
media:
  mode: http
`), 0o644))

		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "base_url")
	})

	t.Run("bad duration", func(t *testing.T) {
		path := filepath.Join(dir, "dur.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
jwt:
  secret: s
cleanup:
  interval: often
`), 0o644))

		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "cleanup interval")
	})
}
