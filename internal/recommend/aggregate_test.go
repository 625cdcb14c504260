// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import (
	"testing"

	"github.com/akerrigan/glpcompass/internal/models"
)

// neighborsFrom wraps records as a neighbor set with uniform similarity.
func neighborsFrom(records []models.ExperienceRecord, sim float64) []Neighbor {
	neighbors := make([]Neighbor, 0, len(records))
	for i := range records {
		neighbors = append(neighbors, Neighbor{Record: &records[i], Similarity: sim, Index: i})
	}
	return neighbors
}

func TestAggregateEmptySetReturnsNil(t *testing.T) {
	t.Parallel()

	if got := Aggregate(nil, models.UnitLbs); got != nil {
		t.Errorf("Aggregate(nil) = %+v, want nil", got)
	}
	if got := Aggregate([]Neighbor{}, models.UnitLbs); got != nil {
		t.Errorf("Aggregate(empty) = %+v, want nil", got)
	}
}

func TestAggregateWeightLossStats(t *testing.T) {
	t.Parallel()

	records := []models.ExperienceRecord{
		{PrimaryDrug: "Ozempic", WeightLossLbs: fptr(10)},
		{PrimaryDrug: "Ozempic", WeightLossLbs: fptr(30)},
		{PrimaryDrug: "Ozempic", WeightLossLbs: fptr(20)},
		{PrimaryDrug: "Ozempic"}, // no figure, skipped
	}

	summary := Aggregate(neighborsFrom(records, 0.9), models.UnitLbs)
	if summary == nil {
		t.Fatal("Aggregate() = nil")
	}
	if summary.WeightLossMin != 10 || summary.WeightLossMax != 30 || summary.WeightLossAvg != 20 {
		t.Errorf("weight loss = (%v, %v, %v), want (10, 30, 20)",
			summary.WeightLossMin, summary.WeightLossMax, summary.WeightLossAvg)
	}
	if summary.SimilarUserCount != 4 {
		t.Errorf("SimilarUserCount = %d, want 4", summary.SimilarUserCount)
	}
}

func TestAggregateWeightLossConvertsToKg(t *testing.T) {
	t.Parallel()

	records := []models.ExperienceRecord{
		{PrimaryDrug: "Ozempic", WeightLossLbs: fptr(22.0462)},
	}

	summary := Aggregate(neighborsFrom(records, 1), models.UnitKg)
	if summary == nil {
		t.Fatal("Aggregate() = nil")
	}
	if !almostEqual(summary.WeightLossAvg, 10, 1e-4) {
		t.Errorf("WeightLossAvg = %v kg, want ~10", summary.WeightLossAvg)
	}
}

func TestAggregateNoWeightLossDataIsZeroNotNil(t *testing.T) {
	t.Parallel()

	records := []models.ExperienceRecord{{PrimaryDrug: "Ozempic"}, {PrimaryDrug: "Ozempic"}}
	summary := Aggregate(neighborsFrom(records, 0.5), models.UnitLbs)
	if summary == nil {
		t.Fatal("Aggregate() = nil for non-empty neighbor set")
	}
	if summary.WeightLossMin != 0 || summary.WeightLossMax != 0 || summary.WeightLossAvg != 0 {
		t.Errorf("weight loss = (%v, %v, %v), want zeros",
			summary.WeightLossMin, summary.WeightLossMax, summary.WeightLossAvg)
	}
}

func TestAggregateSideEffectDedup(t *testing.T) {
	t.Parallel()

	records := []models.ExperienceRecord{
		{PrimaryDrug: "Ozempic", SideEffects: []models.SideEffect{{Name: "Nausea", Severity: models.SeverityMild}}},
		{PrimaryDrug: "Ozempic", SideEffects: []models.SideEffect{{Name: "  nausea ", Severity: models.SeveritySevere}}},
	}

	summary := Aggregate(neighborsFrom(records, 1), models.UnitLbs)
	if summary == nil {
		t.Fatal("Aggregate() = nil")
	}
	if len(summary.SideEffects) != 1 {
		t.Fatalf("got %d side effects, want 1 after dedup: %+v", len(summary.SideEffects), summary.SideEffects)
	}

	se := summary.SideEffects[0]
	if se.Effect != "Nausea" {
		t.Errorf("effect = %q, want Nausea", se.Effect)
	}
	if se.Probability != 100 {
		t.Errorf("probability = %d, want 100 (2 of 2)", se.Probability)
	}
	// Severity of the first occurrence wins.
	if se.Severity != models.SeverityMild {
		t.Errorf("severity = %q, want mild", se.Severity)
	}
}

func TestAggregateSideEffectsRankedAndCapped(t *testing.T) {
	t.Parallel()

	effect := func(names ...string) []models.SideEffect {
		out := make([]models.SideEffect, 0, len(names))
		for _, n := range names {
			out = append(out, models.SideEffect{Name: n})
		}
		return out
	}
	records := []models.ExperienceRecord{
		{PrimaryDrug: "Z", SideEffects: effect("nausea", "fatigue", "constipation", "headache", "dizziness", "hair loss")},
		{PrimaryDrug: "Z", SideEffects: effect("nausea", "fatigue", "constipation")},
		{PrimaryDrug: "Z", SideEffects: effect("nausea", "fatigue")},
		{PrimaryDrug: "Z", SideEffects: effect("nausea")},
	}

	summary := Aggregate(neighborsFrom(records, 1), models.UnitLbs)
	if summary == nil {
		t.Fatal("Aggregate() = nil")
	}
	if len(summary.SideEffects) != 5 {
		t.Fatalf("got %d side effects, want cap of 5", len(summary.SideEffects))
	}

	if summary.SideEffects[0].Effect != "Nausea" || summary.SideEffects[0].Probability != 100 {
		t.Errorf("top effect = %+v, want Nausea at 100", summary.SideEffects[0])
	}
	if summary.SideEffects[1].Effect != "Fatigue" || summary.SideEffects[1].Probability != 75 {
		t.Errorf("second effect = %+v, want Fatigue at 75", summary.SideEffects[1])
	}
	// Singletons tie; first-seen order breaks the tie.
	if summary.SideEffects[3].Effect != "Headache" || summary.SideEffects[4].Effect != "Dizziness" {
		t.Errorf("tie order = %q, %q, want Headache, Dizziness",
			summary.SideEffects[3].Effect, summary.SideEffects[4].Effect)
	}
	for _, se := range summary.SideEffects {
		if se.Probability < 0 || se.Probability > 100 {
			t.Errorf("probability %d out of range for %q", se.Probability, se.Effect)
		}
	}
}

func TestAggregateSkipsEmptyEffectNames(t *testing.T) {
	t.Parallel()

	records := []models.ExperienceRecord{
		{PrimaryDrug: "Z", SideEffects: []models.SideEffect{{Name: "   "}, {Name: ""}}},
	}
	summary := Aggregate(neighborsFrom(records, 1), models.UnitLbs)
	if summary == nil {
		t.Fatal("Aggregate() = nil")
	}
	if len(summary.SideEffects) != 0 {
		t.Errorf("got %d side effects from blank names, want 0", len(summary.SideEffects))
	}
}

func TestAggregateMedianCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		costs []float64
		want  float64
	}{
		{"odd count", []float64{25, 900, 100}, 100},
		{"even count interpolates", []float64{25, 100, 900, 1000}, 500},
		{"single value", []float64{60}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			records := make([]models.ExperienceRecord, 0, len(tt.costs))
			for _, c := range tt.costs {
				cost := c
				records = append(records, models.ExperienceRecord{PrimaryDrug: "Z", CostPerMonth: &cost})
			}
			summary := Aggregate(neighborsFrom(records, 1), models.UnitLbs)
			if summary == nil || summary.EstimatedCost == nil {
				t.Fatal("expected a median cost")
			}
			if *summary.EstimatedCost != tt.want {
				t.Errorf("median = %v, want %v", *summary.EstimatedCost, tt.want)
			}
		})
	}
}

func TestAggregateNoCostDataLeavesNil(t *testing.T) {
	t.Parallel()

	records := []models.ExperienceRecord{{PrimaryDrug: "Z"}}
	summary := Aggregate(neighborsFrom(records, 1), models.UnitLbs)
	if summary == nil {
		t.Fatal("Aggregate() = nil")
	}
	if summary.EstimatedCost != nil {
		t.Errorf("EstimatedCost = %v, want nil", *summary.EstimatedCost)
	}
}

func TestAggregateSuccessRate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pcts []*float64
		want int
	}{
		{"all succeed", []*float64{fptr(15), fptr(15), fptr(15), fptr(15), fptr(15)}, 100},
		{"boundary counts as success", []*float64{fptr(10)}, 100},
		{"below boundary fails", []*float64{fptr(9.9)}, 0},
		{"mixed", []*float64{fptr(12), fptr(5), fptr(20), fptr(8)}, 50},
		{"nil values excluded from denominator", []*float64{fptr(12), nil, nil}, 100},
		{"no data at all", []*float64{nil, nil}, 0},
		{"rounds half away from zero", []*float64{fptr(15), fptr(15), fptr(15), fptr(15), fptr(15), fptr(5), fptr(5), fptr(5)}, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			records := make([]models.ExperienceRecord, 0, len(tt.pcts))
			for _, p := range tt.pcts {
				records = append(records, models.ExperienceRecord{PrimaryDrug: "Z", WeightLossPercentage: p})
			}
			summary := Aggregate(neighborsFrom(records, 1), models.UnitLbs)
			if summary == nil {
				t.Fatal("Aggregate() = nil")
			}
			if summary.SuccessRate != tt.want {
				t.Errorf("SuccessRate = %d, want %d", summary.SuccessRate, tt.want)
			}
		})
	}
}

func TestAggregateAvgSimilarityCarriedThrough(t *testing.T) {
	t.Parallel()

	records := testCorpus("Z", 2)
	neighbors := []Neighbor{
		{Record: &records[0], Similarity: 0.8, Index: 0},
		{Record: &records[1], Similarity: 0.6, Index: 1},
	}
	summary := Aggregate(neighbors, models.UnitLbs)
	if summary == nil {
		t.Fatal("Aggregate() = nil")
	}
	if !almostEqual(summary.AvgSimilarity, 0.7, 1e-9) {
		t.Errorf("AvgSimilarity = %v, want 0.7", summary.AvgSimilarity)
	}
}

func TestNormalizeEffectName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"nausea", "Nausea"},
		{"  Nausea ", "Nausea"},
		{"NAUSEA", "Nausea"},
		{"hair loss", "Hair Loss"},
		{"  injection  site  reaction ", "Injection Site Reaction"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := NormalizeEffectName(tt.in); got != tt.want {
			t.Errorf("NormalizeEffectName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
