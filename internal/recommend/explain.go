// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import (
	"fmt"

	"github.com/akerrigan/glpcompass/internal/models"
)

// Pros/cons rule thresholds, in the units the corresponding summary
// fields use.
const (
	highWeightLoss     = 30.0
	moderateWeightLoss = 20.0
	highSuccessRate    = 80
	lowSuccessRate     = 70
	insuredCheapCost   = 50.0
	affordableCost     = 500.0
	expensiveCost      = 1000.0
	fewSideEffects     = 2
	manySideEffects    = 4
	strongDataCount    = 30
	limitedDataCount   = 10
)

// GenerateProsCons builds the human-readable highlight lists for one
// recommendation from its outcome summary.
//
// Each category fires at most one line. The cost category in particular
// is a first-match chain: an insured user with cheap coverage never also
// sees the high-cost warning, even when both thresholds are technically
// comparable.
func GenerateProsCons(summary *OutcomeSummary, user *models.UserProfile) (pros, cons []string) {
	pros = []string{}
	cons = []string{}

	unit := user.WeightUnit.Normalized()
	switch {
	case summary.WeightLossAvg > highWeightLoss:
		pros = append(pros, fmt.Sprintf("High average weight loss (%.1f %s)", summary.WeightLossAvg, unit))
	case summary.WeightLossAvg < moderateWeightLoss:
		cons = append(cons, fmt.Sprintf("Moderate average weight loss (%.1f %s)", summary.WeightLossAvg, unit))
	}

	switch {
	case summary.SuccessRate >= highSuccessRate:
		pros = append(pros, fmt.Sprintf("High success rate (%d%%)", summary.SuccessRate))
	case summary.SuccessRate < lowSuccessRate:
		cons = append(cons, fmt.Sprintf("Moderate success rate (%d%%)", summary.SuccessRate))
	}

	if summary.hasCost() {
		cost := *summary.EstimatedCost
		switch {
		case user.HasInsurance && cost < insuredCheapCost:
			pros = append(pros, "Good insurance coverage")
		case !user.HasInsurance && cost < affordableCost:
			pros = append(pros, "Relatively affordable without insurance")
		case cost > expensiveCost:
			cons = append(cons, "High out-of-pocket cost")
		}
	}

	switch {
	case len(summary.SideEffects) <= fewSideEffects:
		pros = append(pros, "Fewer reported side effects")
	case len(summary.SideEffects) >= manySideEffects:
		cons = append(cons, "Multiple common side effects reported")
	}

	switch {
	case summary.SimilarUserCount >= strongDataCount:
		pros = append(pros, fmt.Sprintf("Strong data from %d similar users", summary.SimilarUserCount))
	case summary.SimilarUserCount < limitedDataCount:
		cons = append(cons, fmt.Sprintf("Limited data (only %d similar users)", summary.SimilarUserCount))
	}

	return pros, cons
}
