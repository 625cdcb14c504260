// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import (
	"testing"

	"github.com/akerrigan/glpcompass/internal/models"
)

func baseSummary() *OutcomeSummary {
	return &OutcomeSummary{
		WeightLossAvg:    25,
		SuccessRate:      80,
		SimilarUserCount: 15,
		AvgSimilarity:    0.9,
	}
}

func TestMatchScoreNilSummary(t *testing.T) {
	t.Parallel()

	if got := MatchScore(nil, testProfile()); got != 0 {
		t.Errorf("MatchScore(nil) = %v, want 0", got)
	}
}

func TestMatchScoreWeightedSum(t *testing.T) {
	t.Parallel()

	// 0.9*100*0.40 + 80*0.30 + 100*0.20 + 100*0.10 = 36 + 24 + 20 + 10
	if got := MatchScore(baseSummary(), testProfile()); !almostEqual(got, 90, 1e-9) {
		t.Errorf("MatchScore() = %v, want 90", got)
	}
}

func TestMatchScoreBounds(t *testing.T) {
	t.Parallel()

	summaries := []*OutcomeSummary{
		baseSummary(),
		{},
		{AvgSimilarity: 1, SuccessRate: 100},
		{AvgSimilarity: 0, SuccessRate: 0, EstimatedCost: fptr(5000)},
	}
	user := testProfile()
	user.MaxBudget = fptr(10)
	user.SideEffectConcerns = []string{"Nausea", "Vomiting", "Diarrhea", "Fatigue", "Headache", "Dizziness"}

	for i, s := range summaries {
		got := MatchScore(s, user)
		if got < 0 || got > 100 {
			t.Errorf("summary %d: score %v out of [0, 100]", i, got)
		}
	}
}

func TestBudgetComponent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		budget *float64
		cost   *float64
		want   float64
	}{
		{"no budget", nil, fptr(900), 100},
		{"no cost data", fptr(100), nil, 100},
		{"zero cost treated as no data", fptr(100), fptr(0), 100},
		{"within budget", fptr(100), fptr(80), 100},
		{"exactly at budget", fptr(100), fptr(100), 100},
		{"within stretch", fptr(100), fptr(150), 70},
		{"over stretch", fptr(50), fptr(200), 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user := testProfile()
			user.MaxBudget = tt.budget
			summary := baseSummary()
			summary.EstimatedCost = tt.cost

			if got := budgetComponent(summary, user); got != tt.want {
				t.Errorf("budgetComponent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSideEffectComponent(t *testing.T) {
	t.Parallel()

	effects := func(names ...string) []models.SideEffectProbability {
		out := make([]models.SideEffectProbability, 0, len(names))
		for _, n := range names {
			out = append(out, models.SideEffectProbability{Effect: n, Probability: 60})
		}
		return out
	}

	tests := []struct {
		name     string
		concerns []string
		effects  []models.SideEffectProbability
		want     float64
	}{
		{"no concerns", nil, effects("Nausea"), 100},
		{"no effects", []string{"Nausea"}, nil, 100},
		{"one match", []string{"Nausea"}, effects("Nausea", "Fatigue"), 80},
		{"two matches", []string{"Nausea", "Fatigue"}, effects("Nausea", "Fatigue"), 60},
		{"case sensitive as emitted", []string{"nausea"}, effects("Nausea"), 100},
		{"floor at zero", []string{"A", "B", "C", "D", "E", "F"}, effects("A", "B", "C", "D", "E", "F"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user := testProfile()
			user.SideEffectConcerns = tt.concerns
			summary := baseSummary()
			summary.SideEffects = tt.effects

			if got := sideEffectComponent(summary, user); got != tt.want {
				t.Errorf("sideEffectComponent() = %v, want %v", got, tt.want)
			}
		})
	}
}
