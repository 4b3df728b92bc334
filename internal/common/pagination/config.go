// Package pagination adapts pagedlist pages to HTTP: query parameter parsing,
// response envelopes, navigation links, metrics and structured logging.
package pagination

import (
	"fmt"

	"pagedlist/pkg/config"
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables.
type Config struct {
	DefaultPage     int `yaml:"default_page"`      // Page number used when the request has none (typically 1)
	DefaultPageSize int `yaml:"default_page_size"` // Items per page used when the request has none (typically 20)
	MaxPageSize     int `yaml:"max_page_size"`     // Largest page size a client may request (typically 100)
	WindowSize      int `yaml:"window_size"`       // Page numbers shown by a pager (typically 5)
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, page_size=20, max=100, window=5
func DefaultConfig() Config {
	return Config{
		DefaultPage:     1,
		DefaultPageSize: 20,
		MaxPageSize:     100,
		WindowSize:      5,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page number
//   - PAGINATION_DEFAULT_PAGE_SIZE: Default items per page
//   - PAGINATION_MAX_PAGE_SIZE: Maximum items per page
//   - PAGINATION_WINDOW_SIZE: Page numbers shown by a pager
//
// Unset or unparsable variables fall back to DefaultConfig() values.
func LoadFromEnv() Config {
	return DefaultConfig().OverrideFromEnv()
}

// OverrideFromEnv returns c with every field that has an environment variable
// set replaced by that value.
func (c Config) OverrideFromEnv() Config {
	return Config{
		DefaultPage:     config.GetEnvInt("PAGINATION_DEFAULT_PAGE", c.DefaultPage),
		DefaultPageSize: config.GetEnvInt("PAGINATION_DEFAULT_PAGE_SIZE", c.DefaultPageSize),
		MaxPageSize:     config.GetEnvInt("PAGINATION_MAX_PAGE_SIZE", c.MaxPageSize),
		WindowSize:      config.GetEnvInt("PAGINATION_WINDOW_SIZE", c.WindowSize),
	}
}

// Validate checks that the defaults are themselves a valid request.
func (c Config) Validate() error {
	if c.DefaultPage < 1 {
		return fmt.Errorf("default page must be a positive integer, got %d", c.DefaultPage)
	}
	if c.MaxPageSize < 1 {
		return fmt.Errorf("max page size must be a positive integer, got %d", c.MaxPageSize)
	}
	if c.DefaultPageSize < 1 || c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("default page size must be between 1 and %d, got %d", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.WindowSize < 1 {
		return fmt.Errorf("window size must be a positive integer, got %d", c.WindowSize)
	}
	return nil
}
