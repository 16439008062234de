// Package config defines the service configuration and how it is loaded.
package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"Dunklab/internal/db"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`
	// BaseURL is the public site URL used in sitemap and share links.
	BaseURL string `koanf:"base_url"`
	// TLSCert and TLSKey enable HTTPS when both are set.
	TLSCert string `koanf:"tls_cert"`
	TLSKey  string `koanf:"tls_key"`
	// CORSOrigin is sent as Access-Control-Allow-Origin.
	CORSOrigin string `koanf:"cors_origin"`

	// RateLimitRPS and RateLimitBurst size the per-IP token bucket on /api.
	RateLimitRPS   float64 `koanf:"rate_limit_rps"`
	RateLimitBurst int     `koanf:"rate_limit_burst"`

	// ShareSecret signs share links. Sharing is disabled when empty.
	ShareSecret   string `koanf:"share_secret"`
	ShareTTLHours int    `koanf:"share_ttl_hours"`

	// DatabaseDriver selects the catalog store: "" (built-in), "postgres" or "sqlite".
	DatabaseDriver string `koanf:"database_driver"`
	DatabaseURL    string `koanf:"database_url"`
	// Migrate runs catalog migrations at startup.
	Migrate bool `koanf:"migrate"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		LogFormat:      "text",
		Addr:           ":8080",
		BaseURL:        "http://localhost:8080",
		CORSOrigin:     "*",
		RateLimitRPS:   5,
		RateLimitBurst: 10,
		ShareTTLHours:  720,
		Migrate:        true,
	}
}

func (c *Config) ShareTTL() time.Duration {
	return time.Duration(c.ShareTTLHours) * time.Hour
}

func (c *Config) TLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

func (c *Config) SharingEnabled() bool {
	return c.ShareSecret != ""
}

// Validate reports the first problem found, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case !slices.Contains([]string{"text", "json"}, c.LogFormat):
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	case !slices.Contains([]string{"", db.DriverPostgres, db.DriverSQLite}, c.DatabaseDriver):
		return fmt.Errorf("%w: unknown database_driver %q", ErrInvalidConfig, c.DatabaseDriver)
	case c.DatabaseDriver != "" && c.DatabaseURL == "":
		return fmt.Errorf("%w: database_url is required for %s", ErrInvalidConfig, c.DatabaseDriver)
	case c.RateLimitRPS <= 0:
		return fmt.Errorf("%w: rate_limit_rps must be positive", ErrInvalidConfig)
	case c.RateLimitBurst <= 0:
		return fmt.Errorf("%w: rate_limit_burst must be positive", ErrInvalidConfig)
	case c.ShareTTLHours <= 0:
		return fmt.Errorf("%w: share_ttl_hours must be positive", ErrInvalidConfig)
	}
	return nil
}
