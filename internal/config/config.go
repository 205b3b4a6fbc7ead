// Package config loads and validates the application configuration.
//
// Values come from environment variables with the USERMGMT_ prefix
// (optionally via a .env file), are decoded into structs with koanf, and are
// validated with go-playground/validator so the app fails fast on bad config.
// Nested fields map through dot notation, e.g. USERMGMT_SERVER.PORT.
package config

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "USERMGMT_"

// Config is the root configuration object for the application.
type Config struct {
	Primary Primary       `koanf:"primary"`
	Server  ServerConfig  `koanf:"server"`
	Auth    AuthConfig    `koanf:"auth"`
	Logging LoggingConfig `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// AuthConfig controls the token lifecycle.
type AuthConfig struct {
	// TokenTTLSeconds is the sliding expiration window for issued tokens.
	TokenTTLSeconds int `koanf:"token_ttl_seconds" validate:"min=1"`
}

// TTL returns the token lifetime as a duration.
func (a AuthConfig) TTL() time.Duration {
	return time.Duration(a.TokenTTLSeconds) * time.Second
}

// LoggingConfig controls the request/response log file sink.
type LoggingConfig struct {
	// Dir is the directory holding the per-day request log files.
	// Created at startup if absent.
	Dir string `koanf:"dir" validate:"required"`
}

// defaults fills optional fields that were not provided via environment.
func (c *Config) defaults() {
	if c.Primary.Env == "" {
		c.Primary.Env = "development"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = []string{"*"}
	}
	if c.Auth.TokenTTLSeconds == 0 {
		c.Auth.TokenTTLSeconds = 60
	}
	if c.Logging.Dir == "" {
		c.Logging.Dir = "logs"
	}
}

// Load reads, decodes, defaults, and validates the configuration.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "load environment variables")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}

	cfg.defaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	return cfg, nil
}
