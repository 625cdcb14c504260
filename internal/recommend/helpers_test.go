// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import (
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }

// testProfile returns a baseline valid profile: 220 lbs down to 180,
// age 35, female, insured. Mirrors the reference request the upstream
// pipeline tests with.
func testProfile() *models.UserProfile {
	return &models.UserProfile{
		CurrentWeight: 220,
		WeightUnit:    models.UnitLbs,
		GoalWeight:    180,
		Age:           35,
		Sex:           models.SexFemale,
		HasInsurance:  true,
	}
}

// testRecord returns an experience record broadly similar to
// testProfile so cosine similarity is comfortably positive.
func testRecord(drug string) models.ExperienceRecord {
	return models.ExperienceRecord{
		PrimaryDrug:          drug,
		BeginningWeightLbs:   fptr(225),
		WeightLossLbs:        fptr(35),
		WeightLossPercentage: fptr(15.5),
		Age:                  iptr(34),
		Sex:                  models.SexFemale,
		HasInsurance:         bptr(true),
		CostPerMonth:         fptr(25),
	}
}

// testCorpus returns n near-identical records for the drug.
func testCorpus(drug string, n int) []models.ExperienceRecord {
	corpus := make([]models.ExperienceRecord, 0, n)
	for i := 0; i < n; i++ {
		corpus = append(corpus, testRecord(drug))
	}
	return corpus
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := NewEngine(DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return eng
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}
