package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"amlsentinel/internal/domain/entity"

	"github.com/google/uuid"
)

// DiscordConfig contains configuration for Discord webhook notifications.
type DiscordConfig struct {
	// Enabled indicates whether Discord notifications are enabled
	Enabled bool

	// WebhookURL is the Discord webhook URL (includes authentication token)
	WebhookURL string

	// Timeout is the HTTP request timeout for Discord API calls
	Timeout time.Duration
}

// DiscordNotifier sends high-risk alert notifications to Discord via webhook.
type DiscordNotifier struct {
	config      DiscordConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewDiscordNotifier creates a new DiscordNotifier with the specified
// configuration. The rate limiter is set to 0.5 requests/second with burst of
// 3 (Discord webhook limit: 30 requests per minute).
func NewDiscordNotifier(config DiscordConfig) *DiscordNotifier {
	return &DiscordNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: NewRateLimiter(0.5, 3),
	}
}

// DiscordWebhookPayload represents the JSON payload sent to Discord webhook.
type DiscordWebhookPayload struct {
	Embeds []DiscordEmbed `json:"embeds"`
}

// DiscordEmbed represents a Discord embed message.
type DiscordEmbed struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Color       int                `json:"color"`
	Footer      DiscordEmbedFooter `json:"footer"`
}

// DiscordEmbedFooter represents the footer of a Discord embed.
type DiscordEmbedFooter struct {
	Text string `json:"text"`
}

const (
	// Discord limits
	maxTitleLength       = 256
	maxDescriptionLength = 4096
	truncationSuffix     = "..."

	// Embed colors keyed to risk severity
	discordRedColor    = 15548997 // #ED4245, risk score >= 90
	discordOrangeColor = 15105570 // #E67E22
)

// buildEmbedPayload creates a Discord webhook payload from an alert.
// Critical-risk alerts (score >= 90) get a red embed, the rest orange.
func (d *DiscordNotifier) buildEmbedPayload(alert *entity.Alert) DiscordWebhookPayload {
	title := fmt.Sprintf("[%s] %s", alert.AlertID, alert.Title)
	if len(title) > maxTitleLength {
		title = title[:maxTitleLength]
	}

	description := fmt.Sprintf("Risk score: %d\nFlagged: $%.2f across %d transactions\n\n%s",
		alert.RiskScore, alert.TotalFlaggedAmount, alert.FlaggedTransactionCount,
		alert.Description)
	description = truncateText(description, maxDescriptionLength, truncationSuffix)

	color := discordOrangeColor
	if alert.RiskScore >= 90 {
		color = discordRedColor
	}

	embed := DiscordEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: DiscordEmbedFooter{
			Text: fmt.Sprintf("%s • %s", alert.Typology, alert.Status),
		},
	}

	return DiscordWebhookPayload{
		Embeds: []DiscordEmbed{embed},
	}
}

// sendWebhookRequest posts the alert payload to the Discord webhook and maps
// the response to the shared webhook error types.
func (d *DiscordNotifier) sendWebhookRequest(ctx context.Context, alert *entity.Alert) error {
	payload := d.buildEmbedPayload(alert)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.config.WebhookURL, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)

	return classifyResponse("Discord", resp, body)
}

// NotifyAlert sends a Discord notification for a newly surfaced high-risk
// alert. This method implements the AlertNotifier interface.
func (d *DiscordNotifier) NotifyAlert(ctx context.Context, alert *entity.Alert) error {
	requestID := uuid.New().String()
	ctx = context.WithValue(ctx, requestIDKey, requestID)

	slog.Info("Starting Discord notification",
		slog.String("request_id", requestID),
		slog.String("alert_id", alert.AlertID),
		slog.Int("risk_score", alert.RiskScore))

	if err := d.rateLimiter.Allow(ctx); err != nil {
		slog.Error("Rate limiter error",
			slog.String("request_id", requestID),
			slog.String("alert_id", alert.AlertID),
			slog.Any("error", err))
		return fmt.Errorf("rate limiter error: %w", err)
	}

	return sendWithRetry(ctx, "discord", alert.AlertID, func(ctx context.Context) error {
		return d.sendWebhookRequest(ctx, alert)
	})
}
