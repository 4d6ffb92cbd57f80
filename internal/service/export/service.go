// Package export wraps the document and data export endpoints: analytics CSV
// dumps, per-alert STR PDFs and bulk SAR archives.
package export

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"amlsentinel/internal/apiclient"
)

// maxConcurrentDownloads bounds the parallel PDF fetches in STRPDFs so a
// large selection does not flood the backend.
const maxConcurrentDownloads = 4

// Service exposes the export endpoints.
type Service struct {
	client *apiclient.Client
}

// NewService creates an export service over the given client.
func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// AnalyticsCSV downloads the full analytics export as CSV bytes.
func (s *Service) AnalyticsCSV(ctx context.Context) ([]byte, error) {
	data, contentType, err := s.client.GetRaw(ctx, "/analytics/export/csv")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, "text/csv") {
		return nil, fmt.Errorf("unexpected content type %q for csv export", contentType)
	}
	return data, nil
}

// STRPDF downloads the suspicious transaction report PDF for one alert.
func (s *Service) STRPDF(ctx context.Context, alertID string) ([]byte, error) {
	if alertID == "" {
		return nil, fmt.Errorf("alert id is required")
	}
	data, contentType, err := s.client.GetRaw(ctx, "/alerts/"+url.PathEscape(alertID)+"/str/pdf")
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, "application/pdf") {
		return nil, fmt.Errorf("unexpected content type %q for STR pdf", contentType)
	}
	return data, nil
}

// STRPDFs downloads STR PDFs for several alerts concurrently. The result maps
// alert ID to PDF bytes; the first failed download aborts the remaining ones.
func (s *Service) STRPDFs(ctx context.Context, alertIDs []string) (map[string][]byte, error) {
	if len(alertIDs) == 0 {
		return nil, fmt.Errorf("at least one alert id is required")
	}

	var mu sync.Mutex
	results := make(map[string][]byte, len(alertIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDownloads)
	for _, id := range alertIDs {
		id := id
		g.Go(func() error {
			data, err := s.STRPDF(gctx, id)
			if err != nil {
				return fmt.Errorf("alert %s: %w", id, err)
			}
			mu.Lock()
			results[id] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// bulkExportRequest is the payload for the SAR bulk export endpoint.
type bulkExportRequest struct {
	AlertIDs []string `json:"alert_ids"`
}

// BulkSARZip requests a ZIP archive of SAR documents for the given alerts.
func (s *Service) BulkSARZip(ctx context.Context, alertIDs []string) ([]byte, error) {
	if len(alertIDs) == 0 {
		return nil, fmt.Errorf("at least one alert id is required")
	}
	data, contentType, err := s.client.PostRaw(ctx, "/sar/bulk-export", bulkExportRequest{AlertIDs: alertIDs})
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(contentType, "application/zip") {
		return nil, fmt.Errorf("unexpected content type %q for SAR archive", contentType)
	}
	return data, nil
}
