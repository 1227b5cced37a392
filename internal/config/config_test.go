package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		// Must set API_URL or it fails validation
		t.Setenv(EnvAPIURL, "http://localhost:3000/api/v1/")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "http://localhost:3000/api/v1", cfg.APIURL, "Trailing slash is trimmed")
		assert.Equal(t, DefaultBackendTimeout, cfg.BackendTimeout)
		assert.Equal(t, DefaultCatalogCacheSize, cfg.CatalogCacheSize)
		assert.False(t, cfg.UsesDatabase())
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvPort, "3001")
		t.Setenv(EnvAPIURL, "https://api.granblue.team/v1")
		t.Setenv(EnvImageURL, "https://cdn.granblue.team/")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvDatabaseURL, "postgres://u:p@db:5432/hensei")
		t.Setenv(EnvCatalogCacheTTL, "1h")
		t.Setenv(EnvBackendTimeout, "3s")
		t.Setenv(EnvCookieSecure, "true")
		t.Setenv(EnvTrustedProxies, "10.0.0.1,10.0.0.2")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3001, cfg.Port)
		assert.Equal(t, "https://cdn.granblue.team", cfg.ImageURL)
		assert.Equal(t, "debug", cfg.LogLevel, "Level is normalised to lower case")
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.True(t, cfg.UsesDatabase())
		assert.Equal(t, time.Hour, cfg.CatalogCacheTTL)
		assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
		assert.True(t, cfg.CookieSecure)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
		assert.False(t, cfg.IsDevelopment())
	})

	t.Run("returns error when API_URL is missing", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_URL")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for relative API_URL", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIURL, "/api/v1")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "absolute URL")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIURL, "http://localhost:3000")
		t.Setenv(EnvPort, "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})
}

func clearEnvVars(t *testing.T) {
	t.Helper()

	// Clear all config-related env vars to ensure clean test state
	envVars := []string{
		EnvPort, EnvEnvironment, EnvServiceName, EnvVersion, EnvTrustedProxies,
		EnvCookieSecure, EnvCookieDomain, EnvLogLevel, EnvLogFormat, EnvLogDir,
		EnvAPIURL, EnvImageURL, EnvBackendTimeout, EnvDatabaseURL, EnvDBMaxConns,
		EnvCatalogCacheSize, EnvCatalogCacheTTL, EnvEditKeyCacheSize, EnvEditKeyTTL,
		EnvMaxBodyBytes,
	}

	for _, key := range envVars {
		if value, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, value) })
		}
	}
}
