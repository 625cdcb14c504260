// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package models

// WeightLossStats summarizes expected weight loss among a drug's matched
// peers, converted into the requesting user's unit. Values are rounded
// to one decimal.
type WeightLossStats struct {
	Min  float64    `json:"min"`
	Max  float64    `json:"max"`
	Avg  float64    `json:"avg"`
	Unit WeightUnit `json:"unit"`
}

// SideEffectProbability is one entry of a drug's aggregated side-effect
// table: the share of matched peers who reported the effect.
//
// Effect names are normalized to Title Case ("Nausea", "Hair Loss") and
// Severity is the severity of the first report encountered, not a mode
// across reports.
type SideEffectProbability struct {
	Effect      string   `json:"effect"`
	Probability int      `json:"probability"`
	Severity    Severity `json:"severity"`
}

// DrugRecommendation is one ranked recommendation in the engine's output.
//
// JSON field names are camelCase to match the response format consumed
// by downstream clients.
//
// Fields:
//   - MatchScore: 0-100 weighted combination of peer similarity, success
//     rate, budget fit, and side-effect concern alignment
//   - ExpectedWeightLoss: always in the requesting user's unit
//   - SuccessRate: percentage of matched peers who lost at least 10% of
//     their body weight
//   - EstimatedCost: rounded median monthly cost; null when no matched
//     peer reported a cost (serialized as JSON null, never omitted)
//   - SideEffectProbability: at most five entries, most frequent first
//   - SimilarUserCount: number of matched peers backing this entry,
//     never below the engine's eligibility threshold
//   - Pros/Cons: human-readable highlights generated from the aggregate
//     outcomes
type DrugRecommendation struct {
	Drug                  string                  `json:"drug"`
	MatchScore            int                     `json:"matchScore"`
	ExpectedWeightLoss    WeightLossStats         `json:"expectedWeightLoss"`
	SuccessRate           int                     `json:"successRate"`
	EstimatedCost         *int                    `json:"estimatedCost"`
	SideEffectProbability []SideEffectProbability `json:"sideEffectProbability"`
	SimilarUserCount      int                     `json:"similarUserCount"`
	Pros                  []string                `json:"pros"`
	Cons                  []string                `json:"cons"`
}

// RecommendationSet is the full payload for one recommendation call:
// the ranked recommendations plus the corpus size they were computed
// from, so clients can qualify the result ("based on N experiences").
type RecommendationSet struct {
	Recommendations  []DrugRecommendation `json:"recommendations"`
	TotalExperiences int                  `json:"totalExperiences"`
}
