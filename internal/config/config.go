// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration values for the API server.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `envconfig:"PORT" default:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// CORSOrigins is the comma-separated list of allowed cross-origin origins.
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// RedisAddr enables the Redis time-slot cache. Empty selects the
	// in-process cache.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	TimeSlotCacheTTL time.Duration `envconfig:"TIME_SLOT_CACHE_TTL" default:"5m"`

	// BookingWindowDays is how many days ahead, today included, can be booked.
	BookingWindowDays int `envconfig:"BOOKING_WINDOW_DAYS" default:"90"`

	// MarketplaceCurrency is the only currency listings may be priced in.
	MarketplaceCurrency string `envconfig:"MARKETPLACE_CURRENCY" default:"EUR"`

	MaxBodyBytes int64 `envconfig:"MAX_BODY_BYTES" default:"1048576"`

	// MigrateOnStart applies pending goose migrations before serving.
	MigrateOnStart bool `envconfig:"MIGRATE_ON_START" default:"false"`
}

// Load reads configuration from environment variables and returns a Config.
// The error names every variable that is missing or invalid.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)

	var problems []string
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		problems = append(problems, "DATABASE_URL is required")
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		problems = append(problems, "LOG_LEVEL: "+err.Error())
	}
	if cfg.BookingWindowDays < 1 {
		problems = append(problems, "BOOKING_WINDOW_DAYS must be at least 1")
	}
	if cfg.MaxBodyBytes < 1 {
		problems = append(problems, "MAX_BODY_BYTES must be positive")
	}
	if len(problems) > 0 {
		return Config{}, fmt.Errorf("config.Load: invalid environment: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// ParseLevel maps a LOG_LEVEL value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}

// trimAll trims each entry and drops empty ones.
func trimAll(in []string) []string {
	var out []string
	for _, part := range in {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
