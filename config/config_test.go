package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Empty(t, cfg.FDC.APIKey)
	assert.Equal(t, "https://api.nal.usda.gov/fdc", cfg.FDC.BaseURL)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 100, cfg.RateLimit.PerIP)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("LABELFORGE_SERVER_PORT", "9090")
	t.Setenv("LABELFORGE_SERVER_ENVIRONMENT", "production")
	t.Setenv("LABELFORGE_FDC_API_KEY", "test-api-key")
	t.Setenv("LABELFORGE_CACHE_TTL", "30m")
	t.Setenv("LABELFORGE_RATELIMIT_PER_IP", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, "test-api-key", cfg.FDC.APIKey)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 25, cfg.RateLimit.PerIP)
}

func TestLoadValidation(t *testing.T) {
	t.Run("rejects unknown environment", func(t *testing.T) {
		t.Setenv("LABELFORGE_SERVER_ENVIRONMENT", "staging")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "environment")
	})

	t.Run("rejects non-positive cache TTL", func(t *testing.T) {
		t.Setenv("LABELFORGE_CACHE_TTL", "0s")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TTL")
	})

	t.Run("rejects non-positive rate limit", func(t *testing.T) {
		t.Setenv("LABELFORGE_RATELIMIT_PER_IP", "0")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limit")
	})

	t.Run("accepts a missing FDC key", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.FDC.APIKey)
	})
}
