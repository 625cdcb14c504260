// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/akerrigan/glpcompass/internal/metrics"
	"github.com/akerrigan/glpcompass/internal/models"
	"github.com/akerrigan/glpcompass/internal/recommend"
)

// maxRequestBodyBytes bounds the recommendation request body. Profiles
// are small; anything near this limit is malformed or hostile.
const maxRequestBodyBytes = 64 << 10

// Recommendations handles recommendation requests
//
// @Summary Get drug recommendations for a user profile
// @Description Matches the submitted profile against the experience corpus using peer similarity and returns ranked GLP-1 drug recommendations. Missing age defaults to 35 and missing sex to "other".
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param profile body models.UserProfile true "User profile"
// @Success 200 {object} models.APIResponse{data=models.RecommendationSet} "Ranked recommendations"
// @Failure 400 {object} models.APIResponse "Invalid profile"
// @Failure 503 {object} models.APIResponse "Corpus empty or unavailable"
// @Router /recommendations [post]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(&profile); err != nil {
		metrics.RecordRecommendationError("invalid_profile")
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not valid JSON", err)
		return
	}

	// Defaults for omitted fields, applied before validation so the
	// validator only sees complete profiles.
	if profile.Age == 0 {
		profile.Age = DefaultProfileAge
	}
	if profile.Sex == "" {
		profile.Sex = DefaultProfileSex
	}

	if apiErr := validateRequest(&profile); apiErr != nil {
		metrics.RecordRecommendationError("invalid_profile")
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return
	}

	start := time.Now()

	records, err := h.provider.Experiences(r.Context())
	if err != nil {
		metrics.RecordRecommendationError("internal")
		respondError(w, http.StatusServiceUnavailable, "DATABASE_ERROR", "Experience corpus is unavailable", err)
		return
	}

	recs, err := h.engine.Recommend(r.Context(), &profile, records)
	switch {
	case errors.Is(err, recommend.ErrNoUsableCorpus):
		metrics.RecordRecommendationError("no_corpus")
		respondError(w, http.StatusServiceUnavailable, "NO_CORPUS_DATA", "No usable experience data in corpus", err)
		return
	case errors.Is(err, recommend.ErrInvalidProfile):
		metrics.RecordRecommendationError("invalid_profile")
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Profile cannot be scored", err)
		return
	case err != nil:
		metrics.RecordRecommendationError("internal")
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Recommendation computation failed", err)
		return
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendation(elapsed)

	h.logger.Debug().
		Int("recommendations", len(recs)).
		Int("corpus_records", len(records)).
		Dur("elapsed", elapsed).
		Msg("Recommendations served")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.RecommendationSet{
			Recommendations:  recs,
			TotalExperiences: len(records),
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: elapsed.Milliseconds(),
		},
	})
}
