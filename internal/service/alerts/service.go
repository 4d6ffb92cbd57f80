// Package alerts provides typed operations for the alert queue: filtered
// listing, detail lookup, status transitions, bulk close, and AI
// false-positive detection triggers.
package alerts

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"amlsentinel/internal/apiclient"
	"amlsentinel/internal/domain/entity"
	"amlsentinel/internal/pagination"
)

// Service wraps the generic API client with alert queue semantics.
type Service struct {
	client *apiclient.Client
}

// NewService creates an alert queue service over the given client.
func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// ListFilters narrows the alert queue. Zero values mean "no filter".
type ListFilters struct {
	Typology        string
	Status          string
	Search          string
	Resolution      string
	AssignedAnalyst string

	// RiskMin and RiskMax are inclusive bounds on risk_score (0-100);
	// nil leaves the bound open.
	RiskMin *int
	RiskMax *int

	// SortBy defaults to triggered_date, SortOrder to desc, server-side.
	SortBy    string
	SortOrder string
}

// query encodes the filters as backend query parameters, omitting unset
// values entirely.
func (f ListFilters) query() url.Values {
	values := url.Values{}
	set := func(key, value string) {
		if value != "" {
			values.Set(key, value)
		}
	}
	set("typology", f.Typology)
	set("status", f.Status)
	set("search", f.Search)
	set("resolution", f.Resolution)
	set("assigned_analyst", f.AssignedAnalyst)
	set("sort_by", f.SortBy)
	set("sort_order", f.SortOrder)
	if f.RiskMin != nil {
		values.Set("risk_min", strconv.Itoa(*f.RiskMin))
	}
	if f.RiskMax != nil {
		values.Set("risk_max", strconv.Itoa(*f.RiskMax))
	}
	return values
}

// ListResult is one page of the alert queue plus the total count the
// pagination model derives its state from.
type ListResult struct {
	Alerts []entity.Alert `json:"alerts"`
	Total  int64          `json:"total"`
}

// List fetches one page of the alert queue.
func (s *Service) List(ctx context.Context, filters ListFilters, params pagination.Params) (*ListResult, error) {
	values := filters.query()
	for key, vals := range params.Query() {
		values[key] = vals
	}

	var result ListResult
	if err := s.client.Get(ctx, "/alerts?"+values.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches full alert detail by UUID.
func (s *Service) Get(ctx context.Context, alertUUID string) (*entity.Alert, error) {
	var alert entity.Alert
	if err := s.client.Get(ctx, "/alerts/"+url.PathEscape(alertUUID), &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// GetByShortID fetches an alert by its short identifier (e.g. "S1").
func (s *Service) GetByShortID(ctx context.Context, shortID string) (*entity.Alert, error) {
	var alert entity.Alert
	if err := s.client.Get(ctx, "/alerts/by-alert-id/"+url.PathEscape(shortID), &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// Stats fetches queue-level summary statistics.
func (s *Service) Stats(ctx context.Context) (*entity.AlertStats, error) {
	var stats entity.AlertStats
	if err := s.client.Get(ctx, "/alerts/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// StatusUpdate is a status transition request.
type StatusUpdate struct {
	Status     string `json:"status"`
	Rationale  string `json:"rationale"`
	Resolution string `json:"resolution,omitempty"`
}

// Validate checks the transition before it is sent.
func (u StatusUpdate) Validate() error {
	if !entity.IsValidStatus(u.Status) {
		return fmt.Errorf("invalid status %q", u.Status)
	}
	if u.Rationale == "" {
		return fmt.Errorf("rationale is required for status transitions")
	}
	return nil
}

// UpdateStatus transitions an alert's status. The acting analyst is recorded
// in the alert and its audit trail server-side.
func (s *Service) UpdateStatus(ctx context.Context, alertUUID, analyst string, update StatusUpdate) (*entity.Alert, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	path := "/alerts/" + url.PathEscape(alertUUID) + "/status?analyst_username=" + url.QueryEscape(analyst)
	var alert entity.Alert
	if err := s.client.Patch(ctx, path, update, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// BulkCloseRequest closes a batch of alerts with one shared resolution and
// rationale.
type BulkCloseRequest struct {
	AlertIDs   []string `json:"alert_ids"`
	Resolution string   `json:"resolution"`
	Rationale  string   `json:"rationale"`
}

// BulkClose closes multiple alerts in one backend operation.
func (s *Service) BulkClose(ctx context.Context, analyst string, req BulkCloseRequest) (*entity.BulkCloseResult, error) {
	if len(req.AlertIDs) == 0 {
		return nil, fmt.Errorf("at least one alert id is required")
	}

	path := "/alerts/bulk-close?analyst_username=" + url.QueryEscape(analyst)
	var result entity.BulkCloseResult
	if err := s.client.Post(ctx, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FalsePositiveReport is the backend AI's batch assessment.
type FalsePositiveReport struct {
	Results       []entity.FalsePositiveResult `json:"results"`
	TotalAnalyzed int                          `json:"total_analyzed"`
}

// DetectFalsePositives asks the backend to analyze the given alerts for
// false positive indicators. The call only triggers and transports the
// server-side analysis.
func (s *Service) DetectFalsePositives(ctx context.Context, alertIDs []string) (*FalsePositiveReport, error) {
	if len(alertIDs) == 0 {
		return nil, fmt.Errorf("at least one alert id is required")
	}

	body := map[string][]string{"alert_ids": alertIDs}
	var report FalsePositiveReport
	if err := s.client.Post(ctx, "/alerts/detect-false-positives", body, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
