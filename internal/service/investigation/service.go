// Package investigation provides the per-alert investigation surface:
// analyst notes, the audit trail, similar cases, and the case-file PDF.
package investigation

import (
	"context"
	"fmt"
	"net/url"

	"amlsentinel/internal/apiclient"
	"amlsentinel/internal/domain/entity"
)

// Service wraps the generic API client with investigation semantics.
type Service struct {
	client *apiclient.Client
}

// NewService creates an investigation service over the given client.
func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// alertPath builds the common per-alert path prefix.
func alertPath(alertUUID, suffix string) string {
	return "/alerts/" + url.PathEscape(alertUUID) + suffix
}

// Notes lists the analyst notes for an alert, oldest first.
func (s *Service) Notes(ctx context.Context, alertUUID string) ([]entity.InvestigationNote, error) {
	var notes []entity.InvestigationNote
	if err := s.client.Get(ctx, alertPath(alertUUID, "/notes"), &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// AddNote appends a note to an alert's investigation record.
func (s *Service) AddNote(ctx context.Context, alertUUID, analyst, content string) (*entity.InvestigationNote, error) {
	if content == "" {
		return nil, fmt.Errorf("note content cannot be empty")
	}

	path := alertPath(alertUUID, "/notes") + "?analyst_username=" + url.QueryEscape(analyst)
	body := map[string]string{"content": content}

	var note entity.InvestigationNote
	if err := s.client.Post(ctx, path, body, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// AuditTrail lists every recorded action on an alert.
func (s *Service) AuditTrail(ctx context.Context, alertUUID string) ([]entity.AuditTrailEntry, error) {
	var entries []entity.AuditTrailEntry
	if err := s.client.Get(ctx, alertPath(alertUUID, "/audit-trail"), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SimilarCases lists previously worked cases resembling the alert, scored
// server-side.
func (s *Service) SimilarCases(ctx context.Context, alertUUID string) ([]entity.SimilarCase, error) {
	var cases []entity.SimilarCase
	if err := s.client.Get(ctx, alertPath(alertUUID, "/similar-cases"), &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// CaseFilePDF downloads the investigation case file as a PDF.
func (s *Service) CaseFilePDF(ctx context.Context, alertUUID string) ([]byte, error) {
	body, contentType, err := s.client.GetRaw(ctx, alertPath(alertUUID, "/case-file/pdf"))
	if err != nil {
		return nil, err
	}
	if contentType != "application/pdf" {
		return nil, fmt.Errorf("unexpected content type %q for case file", contentType)
	}
	return body, nil
}
