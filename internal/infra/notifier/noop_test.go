package notifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoOpNotifier(t *testing.T) {
	n := NewNoOpNotifier()
	assert.NoError(t, n.NotifyAlert(context.Background(), testAlert()))
	assert.NoError(t, n.NotifyAlert(context.Background(), nil))
}

var _ AlertNotifier = (*NoOpNotifier)(nil)
var _ AlertNotifier = (*SlackNotifier)(nil)
var _ AlertNotifier = (*DiscordNotifier)(nil)
