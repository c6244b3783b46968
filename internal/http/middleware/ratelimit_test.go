package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimitAllowsWithinBurst(t *testing.T) {
	handler := RateLimit(1, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/clinics/org-1/dashboard/metrics", nil)
		req.RemoteAddr = "203.0.113.5:4321"
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}
}

func TestRateLimitRejectsOverBurst(t *testing.T) {
	handler := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/clinics/org-1/dashboard/metrics", nil)
	req.RemoteAddr = "203.0.113.5:4321"
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", second.Code)
	}
	if got := second.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
}

func TestRateLimitTracksClientsIndependently(t *testing.T) {
	handler := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	a := httptest.NewRequest(http.MethodGet, "/clinics/org-1/dashboard/metrics", nil)
	a.RemoteAddr = "203.0.113.5:4321"
	b := httptest.NewRequest(http.MethodGet, "/clinics/org-1/dashboard/metrics", nil)
	b.RemoteAddr = "203.0.113.9:4321"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, a)
	exhausted := httptest.NewRecorder()
	handler.ServeHTTP(exhausted, a)
	other := httptest.NewRecorder()
	handler.ServeHTTP(other, b)

	if exhausted.Code != http.StatusTooManyRequests {
		t.Fatalf("exhausted client status = %d, want 429", exhausted.Code)
	}
	if other.Code != http.StatusOK {
		t.Fatalf("fresh client status = %d, want 200", other.Code)
	}
}
