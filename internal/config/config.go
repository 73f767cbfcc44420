// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory is applied
// first when present, so local development needs no exported variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the tripctl client.
// Values are populated by Load from environment variables.
type Config struct {
	// BaseURL is the root of the remote trip service, no trailing slash.
	// Defaults to the local stub.
	BaseURL string

	// AuthToken is the opaque credential sent verbatim in the
	// Authorization header. Required.
	AuthToken string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string
}

// StubConfig holds the configuration for the stub trip service.
type StubConfig struct {
	// Port is the TCP port the stub listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string
}

// Load reads the client configuration. Returns an error listing any
// required variables that are not set.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:  strings.TrimSuffix(getEnv("TRIP_BASE_URL", "http://localhost:8080"), "/"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	var missing []string

	cfg.AuthToken = os.Getenv("TRIP_AUTH_TOKEN")
	if cfg.AuthToken == "" {
		missing = append(missing, "TRIP_AUTH_TOKEN")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadStub reads the stub service configuration. Nothing is required; every
// value has a default suitable for local development.
func LoadStub() (StubConfig, error) {
	_ = godotenv.Load()

	return StubConfig{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
