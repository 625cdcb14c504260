// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package models

import "time"

// DrugCount pairs a canonical drug name with its corpus record count.
type DrugCount struct {
	Drug  string `json:"drug"`
	Count int    `json:"count"`
}

// CorpusStats summarizes the experience corpus for the stats surface.
//
// Coverage counters report how many records carry each optional signal,
// which is the practical measure of corpus quality: a drug with many
// records but no weight-loss figures still produces thin
// recommendations.
type CorpusStats struct {
	TotalExperiences int         `json:"total_experiences"`
	DistinctDrugs    int         `json:"distinct_drugs"`
	WithWeightLoss   int         `json:"with_weight_loss"`
	WithSideEffects  int         `json:"with_side_effects"`
	WithCost         int         `json:"with_cost"`
	Drugs            []DrugCount `json:"drugs"`
	GeneratedAt      time.Time   `json:"generated_at"`
}

// HealthStatus is the liveness/readiness payload for the health
// endpoints.
type HealthStatus struct {
	Status           string `json:"status"`
	Version          string `json:"version,omitempty"`
	StoreConnected   bool   `json:"store_connected"`
	CorpusLoaded     bool   `json:"corpus_loaded"`
	TotalExperiences int    `json:"total_experiences"`
}
