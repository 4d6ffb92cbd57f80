// Package main provides the amlwatch daemon: a scheduled watcher that polls
// the AML backend's alert queue and pushes newly surfaced high-risk alerts to
// a Slack or Discord channel.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"amlsentinel/internal/apiclient"
	"amlsentinel/internal/infra/notifier"
	"amlsentinel/internal/infra/tokenstore"
	"amlsentinel/internal/observability/logging"
	"amlsentinel/internal/service/alerts"
	"amlsentinel/internal/watch"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	watchConfig := watch.LoadConfigFromEnv()
	if err := watchConfig.Validate(); err != nil {
		logger.Error("invalid watcher configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("watcher configuration loaded",
		slog.String("cron_schedule", watchConfig.CronSchedule),
		slog.String("timezone", watchConfig.Timezone),
		slog.Int("risk_threshold", watchConfig.RiskThreshold),
		slog.String("channel", watchConfig.Channel))

	clientConfig := apiclient.LoadConfig()

	tokenPath, err := tokenstore.DefaultPath()
	if err != nil {
		logger.Error("failed to resolve token path", slog.Any("error", err))
		os.Exit(1)
	}

	client, err := apiclient.New(clientConfig, tokenstore.New(tokenPath))
	if err != nil {
		logger.Error("failed to create API client", slog.Any("error", err))
		os.Exit(1)
	}

	channel := buildNotifier(logger, watchConfig)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := watch.NewMetrics()
	startMetricsServer(ctx, logger)

	watcher := watch.New(watchConfig, alerts.NewService(client), channel, metrics)
	if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("watcher exited with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

// buildNotifier selects the notification channel from configuration.
func buildNotifier(logger *slog.Logger, cfg watch.Config) notifier.AlertNotifier {
	switch cfg.Channel {
	case "slack":
		logger.Info("Slack channel initialized")
		return notifier.NewSlackNotifier(notifier.SlackConfig{
			Enabled:    true,
			WebhookURL: cfg.WebhookURL,
			Timeout:    cfg.WebhookTimeout,
		})
	case "discord":
		logger.Info("Discord channel initialized")
		return notifier.NewDiscordNotifier(notifier.DiscordConfig{
			Enabled:    true,
			WebhookURL: cfg.WebhookURL,
			Timeout:    cfg.WebhookTimeout,
		})
	default:
		logger.Info("notifications disabled")
		return notifier.NewNoOpNotifier()
	}
}
