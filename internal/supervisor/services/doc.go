// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package services contains suture.Service wrappers around the
// long-running components: the HTTP server, the ingest journal
// maintenance loop, and the corpus event subscriber. Each wrapper
// translates a component's lifecycle into suture's context-aware Serve
// contract and identifies itself via fmt.Stringer for supervisor logs.
package services
