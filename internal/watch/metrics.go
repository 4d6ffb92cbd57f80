package watch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides Prometheus metrics for the watcher component.
//
// Metrics:
//   - watch_polls_total: poll runs by status (success/failure/skipped)
//   - watch_poll_duration_seconds: poll duration histogram
//   - watch_alerts_notified_total: alerts pushed to the notification channel
//   - watch_last_success_timestamp: Unix time of the last successful poll
type Metrics struct {
	PollsTotal           *prometheus.CounterVec
	PollDurationSeconds  prometheus.Histogram
	AlertsNotifiedTotal  prometheus.Counter
	LastSuccessTimestamp prometheus.Gauge
}

// NewMetrics creates and registers the watcher metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	return &Metrics{
		PollsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "watch_polls_total",
			Help: "Total number of watch polls by status (success/failure/skipped)",
		}, []string{"status"}),

		PollDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "watch_poll_duration_seconds",
			Help:    "Duration of watch polls in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 120},
		}),

		AlertsNotifiedTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "watch_alerts_notified_total",
			Help: "Total number of high-risk alerts pushed to the notification channel",
		}),

		LastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "watch_last_success_timestamp",
			Help: "Unix timestamp of the last successful watch poll",
		}),
	}
}

// RecordPoll records the outcome and duration of one poll.
func (m *Metrics) RecordPoll(status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.PollsTotal.WithLabelValues(status).Inc()
	m.PollDurationSeconds.Observe(duration.Seconds())
	if status == "success" {
		m.LastSuccessTimestamp.SetToCurrentTime()
	}
}

// RecordNotified counts alerts pushed to the channel.
func (m *Metrics) RecordNotified(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.AlertsNotifiedTotal.Add(float64(n))
}
