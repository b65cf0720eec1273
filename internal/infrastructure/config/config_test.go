package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("LOG_DEV", "true")
	t.Setenv("RATE_LIMIT_RPS", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 25, cfg.RateLimit.RequestsPerSecond)
}

func TestDefaultMatchesEnvDefaults(t *testing.T) {
	loaded, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Default(), loaded)
}

func TestLoadOrDefaultNeverNil(t *testing.T) {
	assert.NotNil(t, LoadOrDefault())
}
