// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package ingest loads extraction-pipeline export files into the corpus
// store.
//
// Exports arrive as a JSON array or JSONL stream of experience
// documents. Each document is validated against an embedded JSON Schema
// before it is accepted; invalid documents are counted and skipped, they
// never abort the batch.
//
// Accepted batches can optionally pass through a durable BadgerDB
// journal: the batch is journaled before the store write and confirmed
// after it, so a crash between the two leaves a pending entry that
// Replay picks up on the next start.
package ingest
