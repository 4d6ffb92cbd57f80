package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// pageViewsTotal counts rendered alert queue pages by page-range bucket,
	// to show how deep analysts actually paginate.
	pageViewsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alert_pagination_page_views_total",
			Help: "Total number of rendered alert queue pages",
		},
		[]string{"page_range"},
	)

	// limitChangesTotal counts page-size changes.
	limitChangesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "alert_pagination_limit_changes_total",
			Help: "Total number of page size changes",
		},
	)
)

// RecordPageView records that a page of the alert queue was rendered.
func RecordPageView(page int) {
	pageViewsTotal.WithLabelValues(pageRangeBucket(page)).Inc()
}

// RecordLimitChange records a page-size change.
func RecordLimitChange() {
	limitChangesTotal.Inc()
}

// pageRangeBucket maps a page number to its metrics bucket.
func pageRangeBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
