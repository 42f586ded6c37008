// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. DEALDESK_ADDR.
const Prefix = "DEALDESK"

// Config holds runtime configuration for the server.
type Config struct {
	Addr           string        `envconfig:"ADDR" default:":8080"`
	DBPath         string        `envconfig:"DB_PATH" default:"./data/dealdesk.db"`
	StaticPath     string        `envconfig:"STATIC_PATH" default:"../frontend/dist"`
	ReadTimeout    time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout   time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// LogFormat is "pretty" (coloured, for terminals) or "json".
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	JWTSecret string        `envconfig:"JWT_SECRET"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"24h"`

	// CORSOrigin is sent as Access-Control-Allow-Origin.
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"*"`

	// SeedDemo populates an empty database with the demo transactions the
	// dashboard ships with.
	SeedDemo bool `envconfig:"SEED_DEMO" default:"false"`

	// AdminEmail and AdminPassword create the first admin account at
	// startup if no user with that email exists. Both or neither.
	AdminEmail    string `envconfig:"ADMIN_EMAIL"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD"`
}

// Load reads configuration from DEALDESK_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.JWTSecret) < 16 {
		return nil, errors.New("jwt secret must be provided and at least 16 characters")
	}
	if (cfg.AdminEmail == "") != (cfg.AdminPassword == "") {
		return nil, errors.New("admin email and admin password must be set together")
	}
	return &cfg, nil
}

// SlogLevel maps LogLevel onto a slog level; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
