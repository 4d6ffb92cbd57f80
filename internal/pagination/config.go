package pagination

import (
	"amlsentinel/pkg/config"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultLimit int // Default items per page (typically 20, matching the backend default)
	MaxLimit     int // Maximum allowed items per page (the backend rejects limits above 100)
}

// DefaultConfig returns the default pagination configuration:
// limit=20, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables, falling
// back to DefaultConfig values.
//
// Environment variables:
//   - PAGINATION_DEFAULT_LIMIT: Default items per page
//   - PAGINATION_MAX_LIMIT: Maximum items per page
func LoadFromEnv() Config {
	defaults := DefaultConfig()
	return Config{
		DefaultLimit: config.GetEnvInt("PAGINATION_DEFAULT_LIMIT", defaults.DefaultLimit),
		MaxLimit:     config.GetEnvInt("PAGINATION_MAX_LIMIT", defaults.MaxLimit),
	}
}
