package config_test

import (
	"testing"
	"time"

	"amlsentinel/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		defaultValue string
		want         string
	}{
		{
			name:         "variable set",
			envValue:     "http://aml.internal:8000/api",
			setEnv:       true,
			defaultValue: "http://localhost:8000/api",
			want:         "http://aml.internal:8000/api",
		},
		{
			name:         "variable not set",
			setEnv:       false,
			defaultValue: "http://localhost:8000/api",
			want:         "http://localhost:8000/api",
		},
		{
			name:         "variable set to empty string",
			envValue:     "",
			setEnv:       true,
			defaultValue: "fallback",
			want:         "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_ENV_STRING"
			if tt.setEnv {
				t.Setenv(key, tt.envValue)
			}
			got := config.GetEnvString(key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetEnvString(%q, %q) = %q, want %q", key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		defaultValue int
		want         int
	}{
		{name: "valid integer", envValue: "42", setEnv: true, defaultValue: 20, want: 42},
		{name: "not set", setEnv: false, defaultValue: 20, want: 20},
		{name: "invalid integer", envValue: "abc", setEnv: true, defaultValue: 20, want: 20},
		{name: "negative integer", envValue: "-5", setEnv: true, defaultValue: 20, want: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_ENV_INT"
			if tt.setEnv {
				t.Setenv(key, tt.envValue)
			}
			got := config.GetEnvInt(key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetEnvInt(%q, %d) = %d, want %d", key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		defaultValue bool
		want         bool
	}{
		{name: "true value", envValue: "true", setEnv: true, defaultValue: false, want: true},
		{name: "numeric true", envValue: "1", setEnv: true, defaultValue: false, want: true},
		{name: "false value", envValue: "false", setEnv: true, defaultValue: true, want: false},
		{name: "not set", setEnv: false, defaultValue: true, want: true},
		{name: "invalid value", envValue: "yes", setEnv: true, defaultValue: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_ENV_BOOL"
			if tt.setEnv {
				t.Setenv(key, tt.envValue)
			}
			got := config.GetEnvBool(key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetEnvBool(%q, %t) = %t, want %t", key, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name         string
		envValue     string
		setEnv       bool
		defaultValue time.Duration
		want         time.Duration
	}{
		{name: "valid duration", envValue: "45s", setEnv: true, defaultValue: 30 * time.Second, want: 45 * time.Second},
		{name: "compound duration", envValue: "1m30s", setEnv: true, defaultValue: 30 * time.Second, want: 90 * time.Second},
		{name: "not set", setEnv: false, defaultValue: 30 * time.Second, want: 30 * time.Second},
		{name: "invalid duration", envValue: "soon", setEnv: true, defaultValue: 30 * time.Second, want: 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "TEST_ENV_DURATION"
			if tt.setEnv {
				t.Setenv(key, tt.envValue)
			}
			got := config.GetEnvDuration(key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("GetEnvDuration(%q, %v) = %v, want %v", key, tt.defaultValue, got, tt.want)
			}
		})
	}
}
