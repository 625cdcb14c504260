// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package api

import (
	"net/http"
	"time"

	"github.com/akerrigan/glpcompass/internal/models"
)

// Health handles health check requests
//
// @Summary Get service health status
// @Description Returns liveness information: store connectivity and whether a corpus snapshot is loaded. Always 200; degraded conditions are reported in the payload.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	storeConnected := h.source != nil && h.source.Ping(r.Context()) == nil
	snapshotSize := 0
	if h.provider != nil {
		snapshotSize = h.provider.SnapshotSize()
	}

	status := "healthy"
	if !storeConnected {
		status = "degraded"
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:           status,
			Version:          h.version,
			StoreConnected:   storeConnected,
			CorpusLoaded:     snapshotSize > 0,
			TotalExperiences: snapshotSize,
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady handles readiness probe requests
//
// @Summary Readiness probe
// @Description Returns 200 only when the service can answer recommendation requests: the corpus store is reachable. Returns 503 otherwise.
// @Tags Core
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse "Service is ready"
// @Failure 503 {object} models.APIResponse "Store unreachable"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.source == nil || h.source.Ping(r.Context()) != nil {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "Corpus store is unreachable", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "ready"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
