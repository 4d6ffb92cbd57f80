// Package config provides small helpers for reading configuration values
// from environment variables with typed defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// GetEnvString returns the value of an environment variable, or the default
// value if the variable is not set or empty.
//
// Example:
//
//	baseURL := config.GetEnvString("AML_API_BASE_URL", "http://localhost:8000/api")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the value of an environment variable parsed as an integer.
//
// If the variable is not set, empty, or not a valid integer, the default value
// is returned and a warning is logged for the malformed case.
func GetEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue))
		return defaultValue
	}

	return value
}

// GetEnvBool returns the value of an environment variable parsed as a boolean.
//
// Accepted values are those understood by strconv.ParseBool ("1", "t", "true",
// "0", "f", "false" and their upper-case variants). Invalid values fall back to
// the default and log a warning.
func GetEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		slog.Warn("invalid boolean value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Bool("default", defaultValue))
		return defaultValue
	}

	return value
}

// GetEnvDuration returns the value of an environment variable parsed as a
// time.Duration (e.g. "30s", "1m30s").
//
// If the variable is not set, empty, or cannot be parsed, the default value is
// returned and a warning is logged for the malformed case.
func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		slog.Warn("invalid duration value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.String("default", defaultValue.String()))
		return defaultValue
	}

	return value
}
