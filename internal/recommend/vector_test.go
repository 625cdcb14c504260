// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import (
	"testing"

	"github.com/akerrigan/glpcompass/internal/models"
)

func TestUserVectorLbs(t *testing.T) {
	t.Parallel()

	user := &models.UserProfile{
		CurrentWeight: 220,
		WeightUnit:    models.UnitLbs,
		GoalWeight:    180,
		Age:           35,
		Sex:           models.SexFemale,
		HasInsurance:  true,
		Comorbidities: []string{"pcos", "hypothyroidism"},
	}

	v := UserVector(user)

	if v[0] != 35 {
		t.Errorf("age feature = %v, want 35", v[0])
	}
	if v[1] != 0 || v[2] != 1 {
		t.Errorf("sex features = (%v, %v), want (0, 1)", v[1], v[2])
	}
	if v[3] != 220 {
		t.Errorf("weight feature = %v, want 220", v[3])
	}
	wantBMI := 220.0 / (67.0 * 67.0) * 703.0
	if !almostEqual(v[4], wantBMI, 1e-9) {
		t.Errorf("bmi feature = %v, want %v", v[4], wantBMI)
	}
	wantGoal := (220.0 - 180.0) / 220.0 * 100.0
	if !almostEqual(v[5], wantGoal, 1e-9) {
		t.Errorf("goal feature = %v, want %v", v[5], wantGoal)
	}
	if v[6] != 1 {
		t.Errorf("insurance feature = %v, want 1", v[6])
	}
	// Vocabulary order: diabetes, pcos, hypertension, sleep apnea,
	// hypothyroidism.
	wantComorbid := [5]float64{0, 1, 0, 0, 1}
	for i, want := range wantComorbid {
		if v[7+i] != want {
			t.Errorf("comorbidity feature %d = %v, want %v", i, v[7+i], want)
		}
	}
}

func TestUserVectorKgConversion(t *testing.T) {
	t.Parallel()

	user := &models.UserProfile{
		CurrentWeight: 100,
		WeightUnit:    models.UnitKg,
		GoalWeight:    90,
		Age:           40,
		Sex:           models.SexMale,
	}

	v := UserVector(user)

	if !almostEqual(v[3], 220.462, 0.001) {
		t.Errorf("weight feature = %v, want ~220.462 lbs", v[3])
	}
	// Goal percentage is unit-invariant.
	if !almostEqual(v[5], 10.0, 1e-9) {
		t.Errorf("goal feature = %v, want 10", v[5])
	}
}

func TestUserVectorUnrecognizedUnitTreatedAsLbs(t *testing.T) {
	t.Parallel()

	user := &models.UserProfile{
		CurrentWeight: 200,
		WeightUnit:    models.WeightUnit("stone"),
		GoalWeight:    180,
		Age:           30,
	}

	if v := UserVector(user); v[3] != 200 {
		t.Errorf("weight feature = %v, want 200 (unrecognized unit defaults to lbs)", v[3])
	}
}

func TestExperienceVectorDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  models.ExperienceRecord
		dim  int
		want float64
	}{
		{"age defaults to 30", models.ExperienceRecord{PrimaryDrug: "Ozempic"}, 0, 30},
		{"age kept when present", models.ExperienceRecord{PrimaryDrug: "Ozempic", Age: iptr(52)}, 0, 52},
		{"missing weight is zero", models.ExperienceRecord{PrimaryDrug: "Ozempic"}, 3, 0},
		{"non-positive weight is zero", models.ExperienceRecord{PrimaryDrug: "Ozempic", BeginningWeightLbs: fptr(-5)}, 3, 0},
		{"missing bmi is zero", models.ExperienceRecord{PrimaryDrug: "Ozempic"}, 4, 0},
		{"missing loss pct is zero", models.ExperienceRecord{PrimaryDrug: "Ozempic"}, 5, 0},
		{"missing insurance is zero", models.ExperienceRecord{PrimaryDrug: "Ozempic"}, 6, 0},
		{"insurance kept when present", models.ExperienceRecord{PrimaryDrug: "Ozempic", HasInsurance: bptr(true)}, 6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := ExperienceVector(&tt.rec)
			if v[tt.dim] != tt.want {
				t.Errorf("feature %d = %v, want %v", tt.dim, v[tt.dim], tt.want)
			}
		})
	}
}

func TestVectorSidesAlign(t *testing.T) {
	t.Parallel()

	// A user and a record describing the same person must produce very
	// close vectors; identical encoding on both sides is what makes the
	// cosine comparison meaningful.
	user := &models.UserProfile{
		CurrentWeight: 230,
		WeightUnit:    models.UnitLbs,
		GoalWeight:    195.5,
		Age:           45,
		Sex:           models.SexMale,
		HasInsurance:  true,
		Comorbidities: []string{"diabetes", "sleep apnea"},
	}
	rec := models.ExperienceRecord{
		PrimaryDrug:          "Mounjaro",
		BeginningWeightLbs:   fptr(230),
		WeightLossPercentage: fptr(15.0),
		Age:                  iptr(45),
		Sex:                  models.SexMale,
		HasInsurance:         bptr(true),
		Comorbidities:        []string{"diabetes", "sleep apnea"},
	}

	uv, ev := UserVector(user), ExperienceVector(&rec)
	for i := 0; i < VectorDim; i++ {
		if i == 5 {
			continue // goal pct vs achieved pct differ by construction
		}
		if !almostEqual(uv[i], ev[i], 1e-9) {
			t.Errorf("feature %d: user %v != experience %v", i, uv[i], ev[i])
		}
	}

	if sim := CosineSimilarity(uv, ev); sim < 0.99 {
		t.Errorf("similarity of near-identical vectors = %v, want > 0.99", sim)
	}
}

func TestVectorIsZero(t *testing.T) {
	t.Parallel()

	var zero Vector
	if !zero.IsZero() {
		t.Error("zero vector should report IsZero")
	}

	rec := models.ExperienceRecord{PrimaryDrug: "Ozempic", Age: iptr(0)}
	if v := ExperienceVector(&rec); !v.IsZero() {
		t.Errorf("record with zero age and no other signal should vectorize to zero, got %v", v)
	}
}

func TestWeightUnitRoundTrip(t *testing.T) {
	t.Parallel()

	for _, w := range []float64{1, 35.5, 100, 220.462} {
		back := FromLbs(ToLbs(w, models.UnitKg), models.UnitKg)
		if !almostEqual(back, w, 1e-9) {
			t.Errorf("kg round trip of %v = %v", w, back)
		}
	}
}
