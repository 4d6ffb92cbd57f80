package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.opentelemetry.io/otel/attribute"

	"amlsentinel/internal/domain/entity"
	"amlsentinel/internal/infra/notifier"
	"amlsentinel/internal/observability/tracing"
	"amlsentinel/internal/pagination"
	"amlsentinel/internal/resilience/circuitbreaker"
	"amlsentinel/internal/service/alerts"
)

// pollPageSize is the queue page size used while scanning for new alerts.
const pollPageSize = 100

// maxPollPages caps how deep one poll walks the queue. New alerts sort to the
// front, so anything past this is backlog, not news.
const maxPollPages = 5

// AlertLister is the slice of the alert queue service the watcher needs.
// Implemented by *alerts.Service.
type AlertLister interface {
	List(ctx context.Context, filters alerts.ListFilters, params pagination.Params) (*alerts.ListResult, error)
}

// Watcher polls the alert queue on a schedule and notifies the configured
// channel about alerts at or above the risk threshold that it has not seen
// before. The first poll primes the seen set silently so a restart does not
// replay the whole queue into the channel.
type Watcher struct {
	cfg      Config
	lister   AlertLister
	notifier notifier.AlertNotifier
	breaker  *circuitbreaker.CircuitBreaker
	metrics  *Metrics

	mu     sync.Mutex
	seen   map[string]struct{}
	primed bool
}

// New creates a watcher. metrics may be nil in tests.
func New(cfg Config, lister AlertLister, n notifier.AlertNotifier, metrics *Metrics) *Watcher {
	if n == nil {
		n = notifier.NewNoOpNotifier()
	}
	return &Watcher{
		cfg:      cfg,
		lister:   lister,
		notifier: n,
		breaker:  circuitbreaker.New(circuitbreaker.BackendPollConfig()),
		metrics:  metrics,
		seen:     make(map[string]struct{}),
	}
}

// Poll runs one scan of the alert queue. It fetches high-risk alerts through
// the circuit breaker, walks pages newest first, and notifies unseen alerts.
func (w *Watcher) Poll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, w.cfg.PollTimeout)
	defer cancel()

	ctx, span := tracing.GetTracer().Start(ctx, "watch.poll")
	defer span.End()

	start := time.Now()

	highRisk, err := w.fetchHighRisk(ctx)
	if err != nil {
		w.metrics.RecordPoll("failure", time.Since(start))
		slog.Error("watch poll failed",
			slog.Any("error", err),
			slog.String("circuit", w.breaker.State().String()))
		return err
	}
	span.SetAttributes(attribute.Int("watch.alerts_fetched", len(highRisk)))

	fresh := w.markSeen(highRisk)
	notified := 0
	for i := range fresh {
		if err := w.notifier.NotifyAlert(ctx, &fresh[i]); err != nil {
			slog.Error("alert notification failed",
				slog.String("alert_id", fresh[i].AlertID),
				slog.Any("error", err))
			continue
		}
		notified++
	}

	w.metrics.RecordPoll("success", time.Since(start))
	w.metrics.RecordNotified(notified)
	slog.Info("watch poll complete",
		slog.Int("high_risk", len(highRisk)),
		slog.Int("new", len(fresh)),
		slog.Int("notified", notified),
		slog.Duration("took", time.Since(start)))
	return nil
}

// fetchHighRisk pages through the queue collecting alerts at or above the
// risk threshold, newest first.
func (w *Watcher) fetchHighRisk(ctx context.Context) ([]entity.Alert, error) {
	threshold := w.cfg.RiskThreshold
	filters := alerts.ListFilters{
		RiskMin:   &threshold,
		SortBy:    "triggered_date",
		SortOrder: "desc",
	}

	var collected []entity.Alert
	params := pagination.Params{Offset: 0, Limit: pollPageSize}
	for page := 0; page < maxPollPages; page++ {
		result, err := w.breaker.Execute(func() (interface{}, error) {
			return w.lister.List(ctx, filters, params)
		})
		if err != nil {
			return nil, fmt.Errorf("list alerts: %w", err)
		}

		list := result.(*alerts.ListResult)
		collected = append(collected, list.Alerts...)

		next := params.Next(list.Total)
		if next == params {
			break
		}
		params = next
	}
	return collected, nil
}

// markSeen records the given alerts in the seen set and returns the ones that
// were not there before. The first call primes the set and returns nothing.
func (w *Watcher) markSeen(list []entity.Alert) []entity.Alert {
	w.mu.Lock()
	defer w.mu.Unlock()

	var fresh []entity.Alert
	for _, alert := range list {
		if _, ok := w.seen[alert.ID]; ok {
			continue
		}
		w.seen[alert.ID] = struct{}{}
		if w.primed {
			fresh = append(fresh, alert)
		}
	}

	if !w.primed {
		w.primed = true
		slog.Info("watch seen set primed", slog.Int("alerts", len(w.seen)))
		return nil
	}
	return fresh
}

// Run schedules Poll on the configured cron expression and blocks until the
// context is canceled. The first poll runs immediately to prime the seen set.
func (w *Watcher) Run(ctx context.Context) error {
	location, err := time.LoadLocation(w.cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}

	if err := w.Poll(ctx); err != nil {
		slog.Warn("initial poll failed, continuing on schedule", slog.Any("error", err))
	}

	scheduler := cron.New(cron.WithLocation(location))
	_, err = scheduler.AddFunc(w.cfg.CronSchedule, func() {
		if err := w.Poll(ctx); err != nil {
			slog.Error("scheduled poll failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule poll: %w", err)
	}

	scheduler.Start()
	slog.Info("watcher started",
		slog.String("schedule", w.cfg.CronSchedule),
		slog.String("timezone", w.cfg.Timezone),
		slog.Int("risk_threshold", w.cfg.RiskThreshold))

	<-ctx.Done()

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	slog.Info("watcher stopped")
	return ctx.Err()
}
