// Package notifier provides abstraction for pushing high-risk alert
// notifications to chat channels. It defines the AlertNotifier interface which
// allows different mechanisms (Slack, Discord, none) to be used
// interchangeably through dependency injection.
package notifier

import (
	"context"

	"amlsentinel/internal/domain/entity"
)

// AlertNotifier is an interface for sending alert notifications.
// Implementations handle rate limiting, retries, and error logging internally.
type AlertNotifier interface {
	// NotifyAlert sends a notification about a newly surfaced high-risk alert.
	// The notification includes the alert's title, short ID, typology, risk
	// score and flagged amount.
	//
	// Implementations should:
	//   - Generate a unique request ID for tracing
	//   - Apply rate limiting to respect the webhook service's limits
	//   - Retry transient failures, failing fast on client errors
	//   - Respect context cancellation
	NotifyAlert(ctx context.Context, alert *entity.Alert) error
}
