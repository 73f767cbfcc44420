package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkraev/trip-planner/internal/config"
)

// TestLoad_defaults verifies that optional env vars fall back to their defaults
// when only the required TRIP_AUTH_TOKEN is provided.
func TestLoad_defaults(t *testing.T) {
	t.Setenv("TRIP_AUTH_TOKEN", "Basic dGVzdA==")
	t.Setenv("TRIP_BASE_URL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.Equal(t, "Basic dGVzdA==", cfg.AuthToken)
	require.Equal(t, "info", cfg.LogLevel)
}

// TestLoad_overrides verifies that all values can be overridden via env vars,
// and that a trailing slash on the base URL is trimmed.
func TestLoad_overrides(t *testing.T) {
	t.Setenv("TRIP_AUTH_TOKEN", "Bearer abc123")
	t.Setenv("TRIP_BASE_URL", "https://trips.example.com/")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.Load()

	require.NoError(t, err)
	require.Equal(t, "https://trips.example.com", cfg.BaseURL)
	require.Equal(t, "Bearer abc123", cfg.AuthToken)
	require.Equal(t, "debug", cfg.LogLevel)
}

// TestLoad_missingRequired verifies that an error is returned when
// TRIP_AUTH_TOKEN is not set, and that the message names the variable.
func TestLoad_missingRequired(t *testing.T) {
	t.Setenv("TRIP_AUTH_TOKEN", "")

	_, err := config.Load()

	require.Error(t, err)
	require.ErrorContains(t, err, "TRIP_AUTH_TOKEN")
}

// TestLoadStub_defaults verifies the stub service needs no configuration.
func TestLoadStub_defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := config.LoadStub()

	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
}

// TestLoadStub_overrides verifies the stub values can be overridden, including
// a comma-separated origin list.
func TestLoadStub_overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := config.LoadStub()

	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}
