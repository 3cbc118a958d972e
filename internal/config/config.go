// Package config loads and validates application configuration from the
// environment and an optional .env file using Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values for the API server.
// Values are populated by Load.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// SessionSecret is the HMAC key that signs session cookies. Required.
	SessionSecret string

	// SessionTTL is how long a login session stays valid. Defaults to 24h.
	SessionTTL time.Duration

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// MigrateOnStart applies pending migrations before serving.
	MigrateOnStart bool
}

// Load reads .env (if present), then builds and validates Config from the
// environment. Environment variables override .env.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // a missing .env is fine

	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("MIGRATE_ON_START", false)

	cfg := Config{
		Port:           v.GetString("PORT"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		CORSOrigins:    splitCSV(v.GetString("CORS_ORIGINS")),
		SessionSecret:  v.GetString("SESSION_SECRET"),
		SessionTTL:     v.GetDuration("SESSION_TTL"),
		MaxBodyBytes:   v.GetInt64("MAX_BODY_BYTES"),
		MigrateOnStart: v.GetBool("MIGRATE_ON_START"),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if cfg.SessionSecret == "" {
		missing = append(missing, "SESSION_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("config: SESSION_TTL must be a positive duration, got %q", v.GetString("SESSION_TTL"))
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config: MAX_BODY_BYTES must be positive")
	}

	return cfg, nil
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
