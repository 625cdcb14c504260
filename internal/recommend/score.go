// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import "github.com/akerrigan/glpcompass/internal/models"

// Scoring weights. Fixed by design; they sum to 1.0. The per-feature
// weights in Config.FeatureWeights are a different, currently dormant
// knob and play no part here.
const (
	weightSimilarity = 0.40
	weightSuccess    = 0.30
	weightBudget     = 0.20
	weightSideEffect = 0.10
)

// Budget-fit tiers: full marks within budget, a fixed penalty up to 1.5x
// budget, a deeper one beyond.
const (
	budgetFitFull    = 100.0
	budgetFitStretch = 70.0
	budgetFitPoor    = 40.0
	budgetStretchMul = 1.5
)

// concernPenalty is subtracted per aggregated side effect that matches
// one of the user's stated concerns.
const concernPenalty = 20.0

// MatchScore combines an outcome summary with the user's preferences
// into a single 0-100 score:
//
//	0.40 x mean neighbor similarity (scaled to 0-100)
//	0.30 x success rate
//	0.20 x budget fit
//	0.10 x side-effect concern alignment
func MatchScore(summary *OutcomeSummary, user *models.UserProfile) float64 {
	if summary == nil {
		return 0
	}

	score := summary.AvgSimilarity*100*weightSimilarity +
		float64(summary.SuccessRate)*weightSuccess +
		budgetComponent(summary, user)*weightBudget +
		sideEffectComponent(summary, user)*weightSideEffect

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// budgetComponent scores how the drug's median monthly cost fits the
// user's budget. No stated budget or no cost data means no basis to
// penalize, so full marks.
func budgetComponent(summary *OutcomeSummary, user *models.UserProfile) float64 {
	if user.MaxBudget == nil || *user.MaxBudget <= 0 || !summary.hasCost() {
		return budgetFitFull
	}

	cost, budget := *summary.EstimatedCost, *user.MaxBudget
	switch {
	case cost <= budget:
		return budgetFitFull
	case cost <= budget*budgetStretchMul:
		return budgetFitStretch
	default:
		return budgetFitPoor
	}
}

// sideEffectComponent penalizes each aggregated side effect whose name
// appears in the user's concern list. Matching is exact against the
// Title Case names the aggregator emits; callers that want fuzzy concern
// matching normalize concerns before building the profile.
func sideEffectComponent(summary *OutcomeSummary, user *models.UserProfile) float64 {
	if len(user.SideEffectConcerns) == 0 || len(summary.SideEffects) == 0 {
		return 100
	}

	matched := 0
	for _, se := range summary.SideEffects {
		if containsString(user.SideEffectConcerns, se.Effect) {
			matched++
		}
	}

	score := 100 - float64(matched)*concernPenalty
	if score < 0 {
		return 0
	}
	return score
}

// hasCost reports whether the summary carries a positive median cost.
// A zero median means every reporting neighbor paid nothing, which the
// scorer treats the same as no cost data.
func (s *OutcomeSummary) hasCost() bool {
	return s.EstimatedCost != nil && *s.EstimatedCost > 0
}
