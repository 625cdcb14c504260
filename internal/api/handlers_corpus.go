// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package api

import (
	"net/http"
	"time"

	"github.com/akerrigan/glpcompass/internal/cache"
	"github.com/akerrigan/glpcompass/internal/metrics"
	"github.com/akerrigan/glpcompass/internal/models"
)

// CorpusStats handles corpus statistics requests
//
// @Summary Get experience corpus statistics
// @Description Returns record counts, per-drug distribution, and coverage of the optional signals (weight loss, side effects, cost). Responses are cached.
// @Tags Corpus
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.CorpusStats} "Corpus statistics"
// @Failure 500 {object} models.APIResponse "Store query failure"
// @Router /corpus/stats [get]
func (h *Handler) CorpusStats(w http.ResponseWriter, r *http.Request) {
	key := cache.GenerateKey("corpus.stats", nil)
	if cached, ok := h.cacheGet(key); ok {
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status:   "success",
			Data:     cached,
			Metadata: models.Metadata{Timestamp: time.Now(), Cached: true},
		})
		return
	}

	stats, err := h.source.Stats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to compute corpus statistics", err)
		return
	}
	h.cacheSet(key, stats)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     stats,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// Drugs handles drug listing requests
//
// @Summary List drugs present in the corpus
// @Description Returns the distinct canonical drug names with their record counts, largest first. Responses are cached.
// @Tags Corpus
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.DrugCount} "Drug counts"
// @Failure 500 {object} models.APIResponse "Store query failure"
// @Router /drugs [get]
func (h *Handler) Drugs(w http.ResponseWriter, r *http.Request) {
	key := cache.GenerateKey("corpus.drugs", nil)
	if cached, ok := h.cacheGet(key); ok {
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status:   "success",
			Data:     cached,
			Metadata: models.Metadata{Timestamp: time.Now(), Cached: true},
		})
		return
	}

	counts, err := h.source.CountByDrug(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to list drugs", err)
		return
	}
	h.cacheSet(key, counts)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     counts,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// cacheGet reads the response cache, recording hit/miss metrics. A nil
// cache always misses.
func (h *Handler) cacheGet(key string) (interface{}, bool) {
	if h.respCache == nil {
		return nil, false
	}
	if v, ok := h.respCache.Get(key); ok {
		metrics.CacheHits.Inc()
		return v, true
	}
	metrics.CacheMisses.Inc()
	return nil, false
}

// cacheSet stores a response with the configured TTL.
func (h *Handler) cacheSet(key string, value interface{}) {
	if h.respCache == nil {
		return
	}
	h.respCache.SetWithTTL(key, value, h.cacheTTL)
}
