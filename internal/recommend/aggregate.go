// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/akerrigan/glpcompass/internal/models"
)

// successLossPercent is the weight-loss percentage at or above which a
// peer outcome counts as a success.
const successLossPercent = 10.0

// maxReportedSideEffects caps the aggregated side-effect table.
const maxReportedSideEffects = 5

// OutcomeSummary is the reduction of one drug's neighbor set: the
// statistics the scorer and the response builder consume. WeightLoss*
// figures are already converted into the requesting user's unit.
//
// EstimatedCost is nil when no neighbor reported a monthly cost.
// AvgSimilarity is the mean of the neighbor similarity scores, carried
// through from the similarity engine unchanged.
type OutcomeSummary struct {
	WeightLossMin    float64
	WeightLossMax    float64
	WeightLossAvg    float64
	SuccessRate      int
	EstimatedCost    *float64
	SideEffects      []models.SideEffectProbability
	SimilarUserCount int
	AvgSimilarity    float64
}

// sideEffectCount tracks one normalized effect name during aggregation.
// Severity is the severity of the first report encountered; later
// reports of the same effect do not change it.
type sideEffectCount struct {
	name     string
	count    int
	severity models.Severity
	firstAt  int
}

// Aggregate reduces a neighbor set into an OutcomeSummary in the
// requesting user's weight unit. An empty neighbor set yields nil; a
// non-empty set with no usable weight-loss data yields zero-valued
// weight-loss figures, which is a distinct "no data" answer.
func Aggregate(neighbors []Neighbor, unit models.WeightUnit) *OutcomeSummary {
	if len(neighbors) == 0 {
		return nil
	}

	summary := &OutcomeSummary{
		SimilarUserCount: len(neighbors),
	}

	aggregateWeightLoss(summary, neighbors, unit)
	aggregateSideEffects(summary, neighbors)
	aggregateCost(summary, neighbors)
	aggregateSuccessRate(summary, neighbors)

	var simSum float64
	for _, n := range neighbors {
		simSum += n.Similarity
	}
	summary.AvgSimilarity = simSum / float64(len(neighbors))

	return summary
}

// aggregateWeightLoss computes min/max/mean of reported weight loss,
// converted into the requesting unit before any arithmetic.
func aggregateWeightLoss(summary *OutcomeSummary, neighbors []Neighbor, unit models.WeightUnit) {
	losses := make([]float64, 0, len(neighbors))
	for _, n := range neighbors {
		if n.Record.WeightLossLbs == nil {
			continue
		}
		losses = append(losses, FromLbs(*n.Record.WeightLossLbs, unit))
	}
	if len(losses) == 0 {
		return
	}

	minLoss, maxLoss, sum := losses[0], losses[0], 0.0
	for _, loss := range losses {
		if loss < minLoss {
			minLoss = loss
		}
		if loss > maxLoss {
			maxLoss = loss
		}
		sum += loss
	}

	summary.WeightLossMin = minLoss
	summary.WeightLossMax = maxLoss
	summary.WeightLossAvg = sum / float64(len(losses))
}

// aggregateSideEffects flattens all reported side effects across the
// neighbor set, deduplicates by normalized name, and keeps the most
// frequent entries as integer percentages of the whole set.
func aggregateSideEffects(summary *OutcomeSummary, neighbors []Neighbor) {
	counts := make(map[string]*sideEffectCount)
	order := 0

	for _, n := range neighbors {
		for _, se := range n.Record.SideEffects {
			name := NormalizeEffectName(se.Name)
			if name == "" {
				continue
			}
			entry, ok := counts[name]
			if !ok {
				entry = &sideEffectCount{
					name:     name,
					severity: models.NormalizeSeverity(string(se.Severity)),
					firstAt:  order,
				}
				counts[name] = entry
				order++
			}
			entry.count++
		}
	}

	if len(counts) == 0 {
		return
	}

	ranked := make([]*sideEffectCount, 0, len(counts))
	for _, entry := range counts {
		ranked = append(ranked, entry)
	}
	// Count descending, ties by first-seen order.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].firstAt < ranked[j].firstAt
	})

	if len(ranked) > maxReportedSideEffects {
		ranked = ranked[:maxReportedSideEffects]
	}

	total := float64(len(neighbors))
	summary.SideEffects = make([]models.SideEffectProbability, 0, len(ranked))
	for _, entry := range ranked {
		summary.SideEffects = append(summary.SideEffects, models.SideEffectProbability{
			Effect:      entry.name,
			Probability: roundPercent(float64(entry.count) / total * 100),
			Severity:    entry.severity,
		})
	}
}

// aggregateCost computes the interpolated median of reported monthly
// costs. No reported costs leaves EstimatedCost nil.
func aggregateCost(summary *OutcomeSummary, neighbors []Neighbor) {
	costs := make([]float64, 0, len(neighbors))
	for _, n := range neighbors {
		if n.Record.CostPerMonth != nil {
			costs = append(costs, *n.Record.CostPerMonth)
		}
	}
	if len(costs) == 0 {
		return
	}

	sort.Float64s(costs)
	mid := len(costs) / 2
	var median float64
	if len(costs)%2 == 1 {
		median = costs[mid]
	} else {
		median = (costs[mid-1] + costs[mid]) / 2
	}
	summary.EstimatedCost = &median
}

// aggregateSuccessRate computes the share of neighbors with a reported
// weight-loss percentage at or above the success threshold. Neighbors
// without a reported percentage are excluded from the denominator; no
// reported percentages at all yields zero.
func aggregateSuccessRate(summary *OutcomeSummary, neighbors []Neighbor) {
	reported, succeeded := 0, 0
	for _, n := range neighbors {
		if n.Record.WeightLossPercentage == nil {
			continue
		}
		reported++
		if *n.Record.WeightLossPercentage >= successLossPercent {
			succeeded++
		}
	}
	if reported == 0 {
		return
	}
	summary.SuccessRate = roundPercent(float64(succeeded) / float64(reported) * 100)
}

// NormalizeEffectName canonicalizes a reported side-effect name: trim
// whitespace and title-case each word, so "nausea", " Nausea " and
// "NAUSEA" all aggregate under "Nausea". Returns "" for names that are
// empty after trimming.
func NormalizeEffectName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// roundPercent rounds half away from zero, the rounding rule used for
// every integer percentage this package reports.
func roundPercent(v float64) int {
	return int(math.Round(v))
}
