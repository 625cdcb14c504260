// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

/*
Package middleware provides HTTP middleware components for the service.

This package implements infrastructure middleware for request ID tracking,
Prometheus metrics instrumentation, and gzip compression. CORS, rate
limiting, and security headers live in the API layer's chi middleware
configuration; the pieces here are router-agnostic http.HandlerFunc
wrappers adapted into chi with the API layer's adapter.

Key Components:

  - RequestID: UUID-based request tracking for distributed tracing
  - PrometheusMetrics: HTTP request/response instrumentation
  - Compression: gzip compression for responses when the client accepts it

Usage Example - Request ID:

	http.HandleFunc("/api/v1/recommendations",
	    middleware.RequestID(handler),
	)

	// Access the request ID in a handler
	func handler(w http.ResponseWriter, r *http.Request) {
	    requestID := middleware.GetRequestID(r.Context())
	    _ = requestID
	}

Thread Safety:

All middleware components are thread-safe:
  - Request ID uses context.Context (immutable)
  - Prometheus metrics use atomic operations
  - Compression pools gzip writers per request
*/
package middleware
