// Package config loads the page API server configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"pagedlist/internal/common/pagination"
	envconfig "pagedlist/pkg/config"
)

// ServerConfig represents the page API server configuration.
type ServerConfig struct {
	HTTP       HTTPConfig        `yaml:"http"`
	RateLimit  RateLimitConfig   `yaml:"rate_limit"`
	Pagination pagination.Config `yaml:"pagination"`
}

// HTTPConfig configures the HTTP listener.
type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
}

// RateLimitConfig configures the token bucket in front of the page endpoints.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`

	// TrustProxy keys clients by X-Forwarded-For / X-Real-IP instead of the peer address.
	TrustProxy bool `yaml:"trust_proxy"`
}

// DefaultServerConfig returns the configuration used when no file is given.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 50,
			Burst:             100,
		},
		Pagination: pagination.DefaultConfig(),
	}
}

// LoadServerConfig loads configuration in three layers: defaults, then the
// YAML file at path (skipped when path is empty), then environment variables.
// The result is validated before it is returned.
// The path parameter is expected to come from a trusted source (command-line flag).
func LoadServerConfig(path string) (*ServerConfig, error) {
	cfg := DefaultServerConfig()

	if path != "" {
		// #nosec G304 -- path is provided by the operator, not user input
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields that have an environment variable set.
//
// Supported environment variables:
//   - HTTP_ADDR, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT, MAX_BODY_BYTES
//   - RATE_LIMIT_ENABLED, RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_TRUST_PROXY
//   - PAGINATION_* (see pagination.LoadFromEnv)
func (c *ServerConfig) ApplyEnv() {
	c.HTTP.Addr = envconfig.GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.ReadTimeout = envconfig.GetEnvDuration("HTTP_READ_TIMEOUT", c.HTTP.ReadTimeout)
	c.HTTP.WriteTimeout = envconfig.GetEnvDuration("HTTP_WRITE_TIMEOUT", c.HTTP.WriteTimeout)
	c.HTTP.ShutdownTimeout = envconfig.GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", c.HTTP.ShutdownTimeout)
	c.HTTP.MaxBodyBytes = int64(envconfig.GetEnvInt("MAX_BODY_BYTES", int(c.HTTP.MaxBodyBytes)))

	c.RateLimit.Enabled = envconfig.GetEnvBool("RATE_LIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.RequestsPerSecond = envconfig.GetEnvFloat("RATE_LIMIT_RPS", c.RateLimit.RequestsPerSecond)
	c.RateLimit.Burst = envconfig.GetEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)
	c.RateLimit.TrustProxy = envconfig.GetEnvBool("RATE_LIMIT_TRUST_PROXY", c.RateLimit.TrustProxy)

	c.Pagination = c.Pagination.OverrideFromEnv()
}

// Validate validates the loaded configuration.
func (c *ServerConfig) Validate() error {
	var errs []error

	if c.HTTP.Addr == "" {
		errs = append(errs, errors.New("http addr is required"))
	}
	if err := envconfig.ValidatePositiveDurations(map[string]time.Duration{
		"read_timeout":     c.HTTP.ReadTimeout,
		"write_timeout":    c.HTTP.WriteTimeout,
		"shutdown_timeout": c.HTTP.ShutdownTimeout,
	}); err != nil {
		errs = append(errs, fmt.Errorf("http: %w", err))
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("http max_body_bytes must be positive, got %d", c.HTTP.MaxBodyBytes))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit requests_per_second must be positive, got %v", c.RateLimit.RequestsPerSecond))
		}
		if c.RateLimit.Burst < 1 {
			errs = append(errs, fmt.Errorf("rate_limit burst must be at least 1, got %d", c.RateLimit.Burst))
		}
	}

	if err := c.Pagination.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("pagination: %w", err))
	}

	return errors.Join(errs...)
}
