package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/farmassist/farmassist/server/internal/advisory"
	"github.com/farmassist/farmassist/server/internal/api"
	"github.com/farmassist/farmassist/server/internal/api/handlers"
	"github.com/farmassist/farmassist/server/internal/config"
	"github.com/farmassist/farmassist/server/internal/diagnosis"
	"github.com/farmassist/farmassist/server/internal/vision"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	table, err := advisory.Load("")
	if err != nil {
		t.Fatalf("advisory.Load() error = %v", err)
	}
	cfg := config.Load()
	p := diagnosis.NewPipeline(nopClassifier{}, table)
	h := handlers.New(p, nil, config.UploadConfig{Dir: t.TempDir(), MaxBytes: 1 << 20})
	return api.NewRouter(cfg, h)
}

type nopClassifier struct{}

func (nopClassifier) Classify(ctx context.Context, image []byte, mimeType string) vision.Outcome {
	return vision.Outcome{Status: vision.StatusError}
}

func TestHealthRoute(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("GET /health status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestAnalyzeRouteWired(t *testing.T) {
	r := newTestRouter(t)

	// No multipart body: the handler, not the router, rejects it.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("POST /api/v1/analyze status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestShopsRouteWired(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/shops/nearby", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("GET /api/v1/shops/nearby status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestUnknownRoute(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("GET /api/v1/unknown status = %d, want %d", w.Code, http.StatusNotFound)
	}
}
