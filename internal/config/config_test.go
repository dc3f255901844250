package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	server, err := cfg.GetServer()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:5000", server.ListenAddress)
	assert.Equal(t, "/api", server.BasePath)
	assert.Equal(t, "1.0.0", server.Version)
	assert.Equal(t, []string{"*"}, server.CORSOrigins)
	assert.Equal(t, 10*time.Second, server.ShutdownTimeout)

	rl, err := cfg.GetRateLimit()
	require.NoError(t, err)
	assert.Equal(t, "memory", rl.Type)
	assert.Equal(t, 100, rl.Limit)
	assert.Equal(t, time.Hour, rl.Window)

	st, err := cfg.GetStats()
	require.NoError(t, err)
	assert.Equal(t, "none", st.Store)
	assert.Equal(t, time.Minute, st.FlushFrequency)

	assert.Equal(t, LoggingConfig{Level: "info", Format: "json"}, cfg.GetLogging())
}

func TestInvalidDuration(t *testing.T) {
	v := NewEmptyViper()
	v.Set("ratelimit.window", "forever")

	_, err := NewFromViper(v).GetRateLimit()
	assert.ErrorContains(t, err, "ratelimit.window")
}

func TestNewReadsConfigFileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
ratelimit:
  limit: 5
  window: 10m
logging:
  level: debug
`), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("SPAM_API_LOGGING_FORMAT", "console")

	cfg, err := New()
	require.NoError(t, err)

	rl, err := cfg.GetRateLimit()
	require.NoError(t, err)
	assert.Equal(t, 5, rl.Limit)
	assert.Equal(t, 10*time.Minute, rl.Window)
	assert.Equal(t, LoggingConfig{Level: "debug", Format: "console"}, cfg.GetLogging())
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detector.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
whitelist:
  domains: [example.com, trusted.org]
cli:
  verbose: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"example.com", "trusted.org"}, cfg.GetStringSlice("whitelist.domains"))
	assert.True(t, cfg.GetBool("cli.verbose"))
	assert.Equal(t, path, cfg.GetViper().ConfigFileUsed())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
