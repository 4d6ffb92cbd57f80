package apiclient

import (
	"fmt"
	"strings"
	"time"

	"amlsentinel/pkg/config"
)

// Config holds configuration for the backend API client.
type Config struct {
	// BaseURL is the fixed base URL of the backend API, including the /api
	// prefix (e.g. "http://localhost:8000/api"). Request paths are appended
	// to it verbatim.
	BaseURL string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration pointing at a local
// backend.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8000/api",
		Timeout: 30 * time.Second,
	}
}

// LoadConfig loads client configuration from environment variables.
//
// Environment variables:
//   - AML_API_BASE_URL: Backend base URL (default: http://localhost:8000/api)
//   - AML_HTTP_TIMEOUT: Per-request timeout (default: 30s)
func LoadConfig() Config {
	defaults := DefaultConfig()
	return Config{
		BaseURL: config.GetEnvString("AML_API_BASE_URL", defaults.BaseURL),
		Timeout: config.GetEnvDuration("AML_HTTP_TIMEOUT", defaults.Timeout),
	}
}

// Validate checks the configuration and returns an error if invalid.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}
