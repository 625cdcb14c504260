// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestRouter(t *testing.T, mwConfig *ChiMiddlewareConfig) http.Handler {
	t.Helper()

	h := newTestHandler(t, &mockSource{
		records: testCorpus("Ozempic", 10),
		stats:   testStats(),
	})
	return NewRouter(h, NewChiMiddleware(mwConfig)).SetupChi()
}

func TestRouterRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"health", http.MethodGet, "/api/v1/health", "", http.StatusOK},
		{"readiness", http.MethodGet, "/api/v1/health/ready", "", http.StatusOK},
		{"recommendations", http.MethodPost, "/api/v1/recommendations", fullProfile, http.StatusOK},
		{"stats", http.MethodGet, "/api/v1/corpus/stats", "", http.StatusOK},
		{"drugs", http.MethodGet, "/api/v1/drugs", "", http.StatusOK},
		{"prometheus", http.MethodGet, "/metrics", "", http.StatusOK},
		{"wrong method on recommendations", http.MethodGet, "/api/v1/recommendations", "", http.StatusMethodNotAllowed},
		{"unknown route", http.MethodGet, "/api/v1/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("%s %s = %d, want %d; body = %s",
					tt.method, tt.path, rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestRouterSecurityHeaders(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/drugs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q, want nosniff", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options = %q, want DENY", got)
	}
	if got := rec.Header().Get("X-Request-ID"); got == "" {
		t.Error("X-Request-ID header missing")
	}
}

func TestRouterRateLimitExceeded(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	router := newTestRouter(t, cfg)

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/drugs", nil)
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request = %d, want 429", last.Code)
	}
	env := decodeEnvelope(t, last.Body.Bytes())
	if env.Error == nil || env.Error.Code != "RATE_LIMIT_EXCEEDED" {
		t.Errorf("error = %+v, want RATE_LIMIT_EXCEEDED", env.Error)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://app.example.com"}
	router := newTestRouter(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the configured origin", got)
	}
}
