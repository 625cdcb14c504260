// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

/*
Package api provides the HTTP surface of the service: a chi router with
CORS, per-group rate limiting, security headers, and Prometheus
instrumentation, plus the handlers for recommendations, corpus
statistics, drug listing, and health probes.

All responses use the standard envelope (models.APIResponse) serialized
with goccy/go-json. Read-only surfaces are cached in the shared TTL
cache; the cache is cleared when the corpus changes.
*/
package api
