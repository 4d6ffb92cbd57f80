// Package entity defines the data structures exchanged with the AMLSentinel
// backend. Field names mirror the backend's JSON schema; nullable backend
// fields decode into Go zero values.
package entity

// Alert statuses recognized by the backend workflow.
const (
	StatusNew        = "New"
	StatusInProgress = "In Progress"
	StatusReview     = "Review"
	StatusEscalated  = "Escalated"
	StatusClosed     = "Closed"
)

// validStatuses enumerates the allowed workflow states in transition order.
var validStatuses = []string{
	StatusNew,
	StatusInProgress,
	StatusReview,
	StatusEscalated,
	StatusClosed,
}

// IsValidStatus reports whether s is a status the backend accepts.
func IsValidStatus(s string) bool {
	for _, v := range validStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsOpenStatus reports whether s counts as an open (not yet closed) alert
// state, matching the backend's queue statistics.
func IsOpenStatus(s string) bool {
	return IsValidStatus(s) && s != StatusClosed
}

// Alert is a suspicious-activity alert as returned by both the queue list
// and the investigation detail endpoints.
type Alert struct {
	ID                      string  `json:"id"`
	AlertID                 string  `json:"alert_id"` // short identifier, e.g. "S1", "G2"
	CustomerID              string  `json:"customer_id"`
	Typology                string  `json:"typology"`
	RiskScore               int     `json:"risk_score"` // 0-100
	Status                  string  `json:"status"`
	Title                   string  `json:"title"`
	Description             string  `json:"description"`
	TriggeredDate           string  `json:"triggered_date"`
	AssignedAnalyst         string  `json:"assigned_analyst"`
	Resolution              string  `json:"resolution"`
	ClosedAt                string  `json:"closed_at"`
	TotalFlaggedAmount      float64 `json:"total_flagged_amount"`
	FlaggedTransactionCount int     `json:"flagged_transaction_count"`
}

// AlertStats summarizes the alert queue for the dashboard header.
type AlertStats struct {
	TotalAlerts     int64 `json:"total_alerts"`
	OpenAlerts      int64 `json:"open_alerts"`
	HighRiskCount   int64 `json:"high_risk_count"`
	ClosedCount     int64 `json:"closed_count"`
	UnassignedCount int64 `json:"unassigned_count"`
}

// BulkCloseResult reports the outcome of a bulk close: how many alerts were
// closed and which requested IDs could not be found or updated.
type BulkCloseResult struct {
	ClosedCount int      `json:"closed_count"`
	FailedIDs   []string `json:"failed_ids"`
}

// FalsePositiveResult is the backend AI's assessment of a single alert's
// false positive likelihood. The client only transports it; the analysis
// itself runs server-side.
type FalsePositiveResult struct {
	AlertID             string  `json:"alert_id"`
	AlertShortID        string  `json:"alert_short_id"`
	Title               string  `json:"title"`
	Confidence          float64 `json:"confidence"`
	Reasoning           string  `json:"reasoning"`
	SuggestedResolution string  `json:"suggested_resolution"`
}
