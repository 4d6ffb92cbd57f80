package export_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amlsentinel/internal/apiclient"
	"amlsentinel/internal/service/export"
)

func newService(t *testing.T, baseURL string) *export.Service {
	t.Helper()
	c, err := apiclient.New(apiclient.Config{BaseURL: baseURL, Timeout: 5 * time.Second}, nil)
	require.NoError(t, err)
	return export.NewService(c)
}

func TestAnalyticsCSV(t *testing.T) {
	csv := "alert_id,status,risk_score\nAML-2024-0001,Closed,82\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analytics/export/csv", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte(csv))
	}))
	defer srv.Close()

	data, err := newService(t, srv.URL).AnalyticsCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, csv, string(data))
}

func TestAnalyticsCSVWrongContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>login</html>"))
	}))
	defer srv.Close()

	_, err := newService(t, srv.URL).AnalyticsCSV(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "text/html")
}

func TestSTRPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alerts/a1b2/str/pdf", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.7 str"))
	}))
	defer srv.Close()

	data, err := newService(t, srv.URL).STRPDF(context.Background(), "a1b2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestSTRPDFRequiresID(t *testing.T) {
	_, err := newService(t, "http://localhost:1").STRPDF(context.Background(), "")
	assert.Error(t, err)
}

func TestSTRPDFsConcurrent(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		parts := strings.Split(r.URL.Path, "/")
		require.Len(t, parts, 5)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF " + parts[2]))
	}))
	defer srv.Close()

	ids := []string{"id-1", "id-2", "id-3", "id-4", "id-5", "id-6"}
	results, err := newService(t, srv.URL).STRPDFs(context.Background(), ids)
	require.NoError(t, err)
	assert.EqualValues(t, len(ids), calls.Load())
	require.Len(t, results, len(ids))
	for _, id := range ids {
		assert.Equal(t, "%PDF "+id, string(results[id]))
	}
}

func TestSTRPDFsFailureAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "bad") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Alert not found"})
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF"))
	}))
	defer srv.Close()

	_, err := newService(t, srv.URL).STRPDFs(context.Background(), []string{"ok-1", "bad-2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Alert not found")
}

func TestBulkSARZip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sar/bulk-export", r.URL.Path)

		var body map[string][]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"id-1", "id-2"}, body["alert_ids"])

		w.Header().Set("Content-Type", "application/zip")
		w.Write([]byte("PK\x03\x04"))
	}))
	defer srv.Close()

	data, err := newService(t, srv.URL).BulkSARZip(context.Background(), []string{"id-1", "id-2"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "PK"))
}

func TestBulkSARZipRequiresIDs(t *testing.T) {
	_, err := newService(t, "http://localhost:1").BulkSARZip(context.Background(), nil)
	assert.Error(t, err)
}
