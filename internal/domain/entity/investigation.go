package entity

import "time"

// InvestigationNote is a free-form analyst note attached to an alert.
type InvestigationNote struct {
	ID              string    `json:"id"`
	AlertID         string    `json:"alert_id"`
	AnalystUsername string    `json:"analyst_username"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuditTrailEntry records one action taken on an alert.
type AuditTrailEntry struct {
	ID          string    `json:"id"`
	AlertID     string    `json:"alert_id"`
	Action      string    `json:"action"`
	Details     string    `json:"details"`
	PerformedBy string    `json:"performed_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// SimilarCase is a previously worked case resembling the alert under
// investigation, scored by the backend.
type SimilarCase struct {
	ID              string   `json:"id"`
	AlertID         string   `json:"alert_id"`
	Title           string   `json:"title"`
	Typology        string   `json:"typology"`
	RiskScore       int      `json:"risk_score"`
	Status          string   `json:"status"`
	Resolution      string   `json:"resolution"`
	SimilarityScore int      `json:"similarity_score"`
	MatchingFactors []string `json:"matching_factors"`
}
