package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"huntboard/internal/adapters/http/middleware"
)

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	t.Parallel()

	handler := middleware.RateLimit(1, 3)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	t.Parallel()

	handler := middleware.RateLimit(0.001, 1)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want \"application/problem+json\"", ct)
	}
	if ra := rec.Header().Get("Retry-After"); ra == "" {
		t.Error("Retry-After header not set on rejection")
	}
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	t.Parallel()

	handler := middleware.RateLimit(0, 0)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/board", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200 with limiting disabled", i, rec.Code)
		}
	}
}
