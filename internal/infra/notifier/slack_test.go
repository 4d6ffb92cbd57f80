package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amlsentinel/internal/domain/entity"
)

func testAlert() *entity.Alert {
	return &entity.Alert{
		ID:                      "3f1c8d20-9e2a-4b7f-8a15-6c2d9e0f4a11",
		AlertID:                 "S1",
		Typology:                "Structuring",
		RiskScore:               92,
		Status:                  entity.StatusNew,
		Title:                   "Repeated sub-threshold cash deposits",
		Description:             "Nine deposits between $9,200 and $9,900 over six days.",
		TriggeredDate:           "2024-03-14",
		TotalFlaggedAmount:      86300,
		FlaggedTransactionCount: 9,
	}
}

func TestSlackNotifyAlertSendsBlockKitPayload(t *testing.T) {
	var captured SlackWebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	n := NewSlackNotifier(SlackConfig{
		Enabled:    true,
		WebhookURL: srv.URL,
		Timeout:    5 * time.Second,
	})

	require.NoError(t, n.NotifyAlert(context.Background(), testAlert()))

	assert.Equal(t, "[S1] Repeated sub-threshold cash deposits", captured.Text)
	require.Len(t, captured.Blocks, 2)

	section := captured.Blocks[0]
	assert.Equal(t, "section", section.Type)
	require.NotNil(t, section.Text)
	assert.Contains(t, section.Text.Text, "*[S1] Repeated sub-threshold cash deposits*")
	assert.Contains(t, section.Text.Text, "Risk score: 92")
	assert.Contains(t, section.Text.Text, "$86300.00")

	ctx := captured.Blocks[1]
	assert.Equal(t, "context", ctx.Type)
	require.Len(t, ctx.Elements, 1)
	assert.Contains(t, ctx.Elements[0].Text, "Structuring")
	assert.Contains(t, ctx.Elements[0].Text, "2024-03-14")
}

func TestSlackNotifyAlertClientErrorNoRetry(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no_service"))
	}))
	defer srv.Close()

	n := NewSlackNotifier(SlackConfig{WebhookURL: srv.URL, Timeout: 5 * time.Second})

	err := n.NotifyAlert(context.Background(), testAlert())
	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())

	var clientErr *ClientError
	assert.ErrorAs(t, err, &clientErr)
}

func TestSlackBuildBlockKitPayloadTruncatesLongDescription(t *testing.T) {
	n := NewSlackNotifier(SlackConfig{})

	alert := testAlert()
	alert.Description = strings.Repeat("x", 5000)

	payload := n.buildBlockKitPayload(alert)
	require.Len(t, payload.Blocks, 2)
	text := payload.Blocks[0].Text.Text
	assert.LessOrEqual(t, len(text), maxSectionTextLength)
	assert.True(t, strings.HasSuffix(text, slackTruncationSuffix))
}

func TestSlackNotifyAlertContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	n := NewSlackNotifier(SlackConfig{WebhookURL: srv.URL, Timeout: 5 * time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.NotifyAlert(ctx, testAlert())
	assert.Error(t, err)
}
