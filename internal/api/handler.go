// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/cache"
	"github.com/akerrigan/glpcompass/internal/corpus"
	"github.com/akerrigan/glpcompass/internal/recommend"
)

// Profile defaults applied when the client omits a field, mirroring the
// behavior of the original request wrapper. They live here and in the
// CLI, never in the recommendation core.
const (
	DefaultProfileAge = 35
	DefaultProfileSex = "other"
)

// Handler carries the dependencies shared by all HTTP handlers.
type Handler struct {
	source    corpus.Source
	provider  *corpus.Provider
	engine    *recommend.Engine
	respCache cache.Cacher
	cacheTTL  time.Duration
	version   string
	startTime time.Time
	logger    zerolog.Logger
}

// NewHandler creates the handler set. respCache may be nil to disable
// response caching (the CLI's serve path always passes one).
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(
	source corpus.Source,
	provider *corpus.Provider,
	engine *recommend.Engine,
	respCache cache.Cacher,
	cacheTTL time.Duration,
	version string,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		source:    source,
		provider:  provider,
		engine:    engine,
		respCache: respCache,
		cacheTTL:  cacheTTL,
		version:   version,
		startTime: time.Now(),
		logger:    logger.With().Str("component", "api").Logger(),
	}
}

// InvalidateCache drops all cached responses. Called when the corpus
// changes, either locally after an ingest commit or on a corpus.updated
// event from another instance.
func (h *Handler) InvalidateCache() {
	if h.respCache != nil {
		h.respCache.Clear()
	}
}
