// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package metrics exposes the service's Prometheus instrumentation:
// HTTP request latency and volume, recommendation pipeline latency and
// throughput, corpus size and source health, response cache efficiency,
// ingestion counters, and event publish counters. All collectors are
// registered with promauto at package load; the /metrics endpoint
// serves the default registry.
package metrics
