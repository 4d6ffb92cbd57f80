package notifier

import (
	"context"

	"amlsentinel/internal/domain/entity"
)

// NoOpNotifier is a no-operation implementation of the AlertNotifier
// interface. It is used when notifications are disabled to avoid nil checks
// in the watch loop.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new NoOpNotifier instance.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// NotifyAlert does nothing and returns nil immediately.
func (n *NoOpNotifier) NotifyAlert(ctx context.Context, alert *entity.Alert) error {
	return nil
}
