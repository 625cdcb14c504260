// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package events is the corpus event spine: Watermill over NATS
// JetStream, carrying corpus-updated notifications from ingestion to the
// API response cache and the corpus provider.
//
// The NATS dependencies sit behind the "nats" build tag. The default
// build compiles stub implementations whose constructors return an
// error, so deployments without messaging pay nothing for it; build with
// -tags=nats and set events.enabled to turn the spine on.
package events
