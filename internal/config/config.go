package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// APIBaseURL is the root of the projects API; /api/projects is appended.
	APIBaseURL string `env:"PORTFOLIO_API_URL" envDefault:"http://api.propcloud.fun"`
	// FetchTimeout bounds the projects request. Zero means no bound.
	FetchTimeout time.Duration `env:"PORTFOLIO_FETCH_TIMEOUT" envDefault:"0s"`

	DatabasePath   string        `env:"PORTFOLIO_DB_PATH" envDefault:"portfolio.db"`
	TrackVisitors  bool          `env:"TRACK_VISITORS" envDefault:"true"`
	VisitRetention time.Duration `env:"VISIT_RETENTION" envDefault:"8760h"`

	// AdminToken guards /admin/stats. Empty disables the endpoint.
	AdminToken string `env:"ADMIN_TOKEN"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	Profile ProfileConfig `envPrefix:"PROFILE_"`
}

// ProfileConfig overrides the built-in page content
type ProfileConfig struct {
	Name     string `env:"NAME"`
	Role     string `env:"ROLE"`
	Bio      string `env:"BIO"`
	Email    string `env:"EMAIL"`
	GitHub   string `env:"GITHUB"`
	LinkedIn string `env:"LINKEDIN"`
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("PORTFOLIO_API_URL must not be empty")
	}
	if cfg.FetchTimeout < 0 {
		return nil, fmt.Errorf("PORTFOLIO_FETCH_TIMEOUT must not be negative")
	}
	return &cfg, nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
