// Package watch implements the background alert watcher: a cron-scheduled
// poll of the alert queue that pushes newly surfaced high-risk alerts to a
// chat channel.
package watch

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"amlsentinel/pkg/config"
)

// Config holds the configuration for the watcher component.
type Config struct {
	// CronSchedule is the standard 5-field cron expression for poll scheduling.
	// Default: "*/5 * * * *" (every 5 minutes)
	CronSchedule string

	// Timezone is the IANA timezone name for cron scheduling.
	Timezone string

	// RiskThreshold is the minimum risk_score an alert needs to trigger a
	// notification. Range 0-100.
	RiskThreshold int

	// PollTimeout bounds a single poll, including notifications.
	PollTimeout time.Duration

	// Channel selects the notification mechanism: "slack", "discord" or "none".
	Channel string

	// WebhookURL is the incoming webhook for the selected channel.
	WebhookURL string

	// WebhookTimeout is the HTTP timeout for webhook calls.
	WebhookTimeout time.Duration
}

// DefaultConfig returns a Config with production defaults: poll every five
// minutes and notify on alerts scoring 70 or above.
func DefaultConfig() Config {
	return Config{
		CronSchedule:   "*/5 * * * *",
		Timezone:       "UTC",
		RiskThreshold:  70,
		PollTimeout:    2 * time.Minute,
		Channel:        "none",
		WebhookTimeout: 10 * time.Second,
	}
}

// LoadConfigFromEnv loads watcher configuration from environment variables,
// falling back to defaults for unset or invalid values.
//
// Environment variables:
//   - WATCH_CRON_SCHEDULE: 5-field cron expression
//   - WATCH_TIMEZONE: IANA timezone name
//   - WATCH_RISK_THRESHOLD: integer 0-100
//   - WATCH_POLL_TIMEOUT: duration string, e.g. "2m"
//   - WATCH_CHANNEL: "slack", "discord" or "none"
//   - WATCH_WEBHOOK_URL: webhook URL for the selected channel
//   - WATCH_WEBHOOK_TIMEOUT: duration string, e.g. "10s"
func LoadConfigFromEnv() Config {
	defaults := DefaultConfig()
	return Config{
		CronSchedule:   config.GetEnvString("WATCH_CRON_SCHEDULE", defaults.CronSchedule),
		Timezone:       config.GetEnvString("WATCH_TIMEZONE", defaults.Timezone),
		RiskThreshold:  config.GetEnvInt("WATCH_RISK_THRESHOLD", defaults.RiskThreshold),
		PollTimeout:    config.GetEnvDuration("WATCH_POLL_TIMEOUT", defaults.PollTimeout),
		Channel:        config.GetEnvString("WATCH_CHANNEL", defaults.Channel),
		WebhookURL:     config.GetEnvString("WATCH_WEBHOOK_URL", ""),
		WebhookTimeout: config.GetEnvDuration("WATCH_WEBHOOK_TIMEOUT", defaults.WebhookTimeout),
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if _, err := cron.ParseStandard(c.CronSchedule); err != nil {
		return fmt.Errorf("cron schedule %q: %w", c.CronSchedule, err)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	if c.RiskThreshold < 0 || c.RiskThreshold > 100 {
		return fmt.Errorf("risk threshold %d out of range 0-100", c.RiskThreshold)
	}
	if c.PollTimeout <= 0 {
		return fmt.Errorf("poll timeout must be positive, got %v", c.PollTimeout)
	}
	switch c.Channel {
	case "slack", "discord":
		if c.WebhookURL == "" {
			return fmt.Errorf("%s channel requires WATCH_WEBHOOK_URL", c.Channel)
		}
	case "none":
	default:
		return fmt.Errorf("unknown channel %q, want slack, discord or none", c.Channel)
	}
	return nil
}
