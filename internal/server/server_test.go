package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amplifyai/amplify-backend/internal/config"
	"github.com/amplifyai/amplify-backend/internal/persona"
	"github.com/amplifyai/amplify-backend/internal/report"
)

type fakeService struct {
	report    report.FinalReport
	entries   map[string]persona.Entry
	lastURL   string
	lastEmail string
	copyCalls int
}

func (f *fakeService) Analyze(_ context.Context, rawURL, email string) report.FinalReport {
	f.lastURL = rawURL
	f.lastEmail = email
	return f.report
}

func (f *fakeService) PersonaEntry(identifier string) (persona.Entry, bool) {
	if entry, ok := f.entries[identifier]; ok {
		return entry, true
	}
	entry, ok := f.entries[persona.URLHash(identifier)]
	return entry, ok
}

func (f *fakeService) GeneratePersonaCopy(_ context.Context, c persona.Context) persona.Copy {
	f.copyCalls++
	return persona.FallbackCopy(c)
}

func newTestServer(t *testing.T, svc AnalyzeService) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.JWTSecret = "test-secret"
	return New(cfg, svc, nil)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	svc := &fakeService{report: report.FinalReport{Score: 72, Industry: "SaaS/Tech", Archetype: "The Contender"}}
	s := newTestServer(t, svc)

	rec := postJSON(t, s.Handler(), "/analyze", AnalyzeRequest{URL: "https://acme.io", Email: "a@b.com"})

	require.Equal(t, http.StatusOK, rec.Code)
	var rep report.FinalReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, 72, rep.Score)
	assert.Equal(t, "https://acme.io", svc.lastURL)
	assert.Equal(t, "a@b.com", svc.lastEmail)
}

func TestHandleAnalyzeValidation(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	rec := postJSON(t, s.Handler(), "/analyze", AnalyzeRequest{Email: "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, s.Handler(), "/analyze", AnalyzeRequest{URL: "https://acme.io", Email: "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{broken")))
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyzeRateLimited(t *testing.T) {
	svc := &fakeService{report: report.FinalReport{Score: 50}}
	s := newTestServer(t, svc)

	for i := 0; i < 5; i++ {
		rec := postJSON(t, s.Handler(), "/analyze", AnalyzeRequest{URL: "https://acme.io"})
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}

	rec := postJSON(t, s.Handler(), "/analyze", AnalyzeRequest{URL: "https://acme.io"})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rate_limit_exceeded", body["error"])
}

func TestHandleAnalyzeRateLimitKeyedByForwardedFor(t *testing.T) {
	svc := &fakeService{report: report.FinalReport{Score: 50}}
	s := newTestServer(t, svc)

	send := func(ip string) int {
		data, _ := json.Marshal(AnalyzeRequest{URL: "https://acme.io"})
		req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(data))
		req.Header.Set("X-Forwarded-For", ip+", 70.41.3.18")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, send("203.0.113.7"))
	}
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.7"))
	assert.Equal(t, http.StatusOK, send("198.51.100.9"))
}

func TestHandleGetPersona(t *testing.T) {
	cp := persona.FallbackCopy(persona.Context{URL: "https://acme.io", Industry: "General"})
	hash := persona.URLHash("acme.io")
	svc := &fakeService{entries: map[string]persona.Entry{
		hash: {Status: persona.EntryReady, Copy: &cp},
	}}
	s := newTestServer(t, svc)

	// Lookup by hash.
	req := httptest.NewRequest(http.MethodGet, "/persona/"+hash, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp PersonaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	require.NotNil(t, resp.Data)

	// Lookup by raw URL resolves through the hash.
	req = httptest.NewRequest(http.MethodGet, "/persona/acme.io", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
}

func TestHandleGetPersonaNotFound(t *testing.T) {
	s := newTestServer(t, &fakeService{entries: map[string]persona.Entry{}})

	req := httptest.NewRequest(http.MethodGet, "/persona/unknown.example", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PersonaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Status)
	assert.Equal(t, "No persona data", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestHandleGeneratePersonaCopy(t *testing.T) {
	svc := &fakeService{}
	s := newTestServer(t, svc)

	rec := postJSON(t, s.Handler(), "/generate-persona-copy", PersonaCopyRequest{
		URL:         "https://acme.io",
		Score:       62,
		Industry:    "SaaS/Tech",
		CompanyTier: "growth",
		Benchmark:   88,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.copyCalls)

	var cp persona.Copy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cp))
	assert.NotEmpty(t, cp.Messaging.PainHook)
}

func TestHandleGeneratePersonaCopyValidation(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	rec := postJSON(t, s.Handler(), "/generate-persona-copy", PersonaCopyRequest{Score: 62})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCaptureLeadWithoutDatabase(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	rec := postJSON(t, s.Handler(), "/capture-lead", LeadCaptureRequest{
		Email: "a@b.com", FullName: "Ada Lovelace", CompanyName: "Analytical Engines",
	})

	// Storage failure is reported in-band; the widget shows a soft error.
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
}

func TestHandleCaptureLeadValidation(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	rec := postJSON(t, s.Handler(), "/capture-lead", LeadCaptureRequest{Email: "bad", FullName: "x", CompanyName: "y"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alive", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestDashboardRequiresToken(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/scans", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/dashboard/scans", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboardAcceptsValidToken(t *testing.T) {
	s := newTestServer(t, &fakeService{})

	token, err := s.jwtService.GenerateToken("ops")
	require.NoError(t, err)

	// Valid token passes auth; the nil database then fails the query.
	req := httptest.NewRequest(http.MethodGet, "/dashboard/scans", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
