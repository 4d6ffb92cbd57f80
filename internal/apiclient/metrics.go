package apiclient

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts completed backend requests.
	// Labels: method (GET/POST/PATCH/DELETE), status (HTTP status code).
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aml_client_requests_total",
			Help: "Total number of backend API requests",
		},
		[]string{"method", "status"},
	)

	// requestDuration tracks request duration distribution per method.
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aml_client_request_duration_seconds",
			Help:    "Backend API request duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
		},
		[]string{"method"},
	)

	// transportErrorsTotal counts requests that failed before receiving an
	// HTTP response.
	transportErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aml_client_transport_errors_total",
			Help: "Total number of backend API transport failures",
		},
		[]string{"method"},
	)
)

// recordRequest records a completed request metric.
func recordRequest(method string, statusCode int) {
	requestsTotal.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
}

// recordDuration records request duration in seconds.
func recordDuration(method string, seconds float64) {
	requestDuration.WithLabelValues(method).Observe(seconds)
}

// recordTransportError records a transport-level failure.
func recordTransportError(method string) {
	transportErrorsTotal.WithLabelValues(method).Inc()
}
