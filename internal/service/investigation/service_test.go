package investigation_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"amlsentinel/internal/apiclient"
	"amlsentinel/internal/service/investigation"
)

func newService(serverURL string) *investigation.Service {
	client, err := apiclient.New(apiclient.Config{
		BaseURL: serverURL + "/api",
		Timeout: 5 * time.Second,
	}, apiclient.NoToken())
	if err != nil {
		panic(err)
	}
	return investigation.NewService(client)
}

func TestService_Notes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/alerts/f6a7b8c9/notes", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": "n1", "alert_id": "f6a7b8c9", "analyst_username": "jdoe", "content": "Confirmed payroll pattern", "created_at": "2026-08-01T09:30:00Z"},
			{"id": "n2", "alert_id": "f6a7b8c9", "analyst_username": "asmith", "content": "Escalating for review", "created_at": "2026-08-02T14:10:00Z"}
		]`))
	}))
	defer server.Close()

	notes, err := newService(server.URL).Notes(context.Background(), "f6a7b8c9")

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "jdoe", notes[0].AnalystUsername)
	assert.Equal(t, 2026, notes[0].CreatedAt.Year())
}

func TestService_AddNote(t *testing.T) {
	t.Run("posts the note content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/alerts/f6a7b8c9/notes", r.URL.Path)
			assert.Equal(t, "jdoe", r.URL.Query().Get("analyst_username"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Customer provided invoices", body["content"])

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id": "n3", "alert_id": "f6a7b8c9", "analyst_username": "jdoe", "content": "Customer provided invoices", "created_at": "2026-08-03T08:00:00Z"}`))
		}))
		defer server.Close()

		note, err := newService(server.URL).AddNote(context.Background(), "f6a7b8c9", "jdoe", "Customer provided invoices")

		require.NoError(t, err)
		assert.Equal(t, "n3", note.ID)
	})

	t.Run("rejects empty content locally", func(t *testing.T) {
		_, err := newService("http://unused").AddNote(context.Background(), "f6a7b8c9", "jdoe", "")
		assert.Error(t, err)
	})
}

func TestService_AuditTrail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/alerts/f6a7b8c9/audit-trail", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": "t1", "alert_id": "f6a7b8c9", "action": "status_update", "details": "Status changed to 'Review'", "performed_by": "jdoe", "created_at": "2026-08-02T14:11:00Z"}
		]`))
	}))
	defer server.Close()

	entries, err := newService(server.URL).AuditTrail(context.Background(), "f6a7b8c9")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "status_update", entries[0].Action)
}

func TestService_SimilarCases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/alerts/f6a7b8c9/similar-cases", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id": "c1", "alert_id": "G2", "title": "Layered transfers", "typology": "Structuring", "risk_score": 78, "status": "Closed", "resolution": "False Positive", "similarity_score": 91, "matching_factors": ["typology", "amount_band"]}
		]`))
	}))
	defer server.Close()

	cases, err := newService(server.URL).SimilarCases(context.Background(), "f6a7b8c9")

	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, 91, cases[0].SimilarityScore)
	assert.Equal(t, []string{"typology", "amount_band"}, cases[0].MatchingFactors)
}

func TestService_CaseFilePDF(t *testing.T) {
	t.Run("downloads the pdf", func(t *testing.T) {
		pdf := []byte("%PDF-1.7 case file")
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/alerts/f6a7b8c9/case-file/pdf", r.URL.Path)
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write(pdf)
		}))
		defer server.Close()

		got, err := newService(server.URL).CaseFilePDF(context.Background(), "f6a7b8c9")

		require.NoError(t, err)
		assert.Equal(t, pdf, got)
	})

	t.Run("rejects non-pdf content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer server.Close()

		_, err := newService(server.URL).CaseFilePDF(context.Background(), "f6a7b8c9")
		assert.Error(t, err)
	})
}
