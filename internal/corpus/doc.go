// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package corpus owns the experience corpus: storage, retrieval, and the
// resilient snapshot provider the recommendation service reads through.
//
// Two Source implementations exist:
//
//   - Store: embedded DuckDB, the default. The whole corpus lives in one
//     local file (or in memory for tests) and ingestion writes to it
//     directly.
//   - PostgresSource: a read-only view onto a hosted Postgres written by
//     an external extraction pipeline, for deployments that do not ingest
//     locally.
//
// Provider sits in front of either source and adds a TTL snapshot cache,
// a refresh throttle, and a circuit breaker, so a slow or broken store
// degrades recommendation traffic to the last good snapshot instead of
// failing it.
//
// Drug names are standardized (canonical Title Case, known variants
// mapped to one spelling) on every write and on every read of raw rows,
// so the engine's exact-match drug grouping is meaningful.
package corpus
