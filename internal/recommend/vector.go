// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import (
	"github.com/akerrigan/glpcompass/internal/models"
)

// LbsPerKg converts kilograms to pounds. Corpus weights are stored in
// pounds, so every user-supplied kilogram figure crosses this constant
// exactly once on the way in and once on the way out.
const LbsPerKg = 2.20462

// AssumedHeightInches is the fixed height used for the BMI feature.
// Experience records carry no height, so BMI here is a relative
// discriminator computed against an assumed 5'7" frame, not a clinical
// BMI. Kept as a named constant so a real height field can replace it
// without touching the vectorizer logic.
const AssumedHeightInches = 67.0

// bmiScale is the standard imperial BMI conversion factor.
const bmiScale = 703.0

// defaultExperienceAge is imputed when an experience record carries no
// extracted age. The user's age is never defaulted; the request layer
// guarantees it is present.
const defaultExperienceAge = 30.0

// VectorDim is the fixed length of every feature vector.
const VectorDim = 12

// comorbidityVocabulary is the fixed set of conditions encoded as binary
// indicator features, in vector order. Matching is exact string
// membership; the extraction pipeline emits these exact lowercase terms.
var comorbidityVocabulary = [...]string{
	"diabetes",
	"pcos",
	"hypertension",
	"sleep apnea",
	"hypothyroidism",
}

// Vector is a fixed-length numeric feature encoding of a user profile or
// an experience record. Both sides use identical feature ordering:
//
//	0  age
//	1  sex is male (0/1)
//	2  sex is female (0/1)
//	3  current/beginning weight in lbs
//	4  estimated BMI at the assumed height
//	5  weight-loss goal (user) or achieved loss (experience), percent
//	6  has insurance (0/1)
//	7+ comorbidity indicators in vocabulary order
type Vector [VectorDim]float64

// IsZero reports whether every feature is zero. A zero vector carries no
// signal and scores zero similarity against everything.
func (v Vector) IsZero() bool {
	for _, f := range v {
		if f != 0 {
			return false
		}
	}
	return true
}

// ToLbs converts a weight in the given unit to pounds. Unrecognized unit
// strings are treated as pounds already; request validation rejects them
// upstream, so this is a defensive default rather than an error path.
func ToLbs(weight float64, unit models.WeightUnit) float64 {
	if unit.Normalized() == models.UnitKg {
		return weight * LbsPerKg
	}
	return weight
}

// FromLbs converts a weight in pounds into the given unit.
func FromLbs(weightLbs float64, unit models.WeightUnit) float64 {
	if unit.Normalized() == models.UnitKg {
		return weightLbs / LbsPerKg
	}
	return weightLbs
}

// estimateBMI computes the relative BMI feature at the assumed height.
func estimateBMI(weightLbs float64) float64 {
	return weightLbs / (AssumedHeightInches * AssumedHeightInches) * bmiScale
}

// UserVector encodes a user profile as a feature vector. Weights are
// converted to pounds first so user and corpus features share a scale.
func UserVector(user *models.UserProfile) Vector {
	weightLbs := ToLbs(user.CurrentWeight, user.WeightUnit)
	goalLbs := ToLbs(user.GoalWeight, user.WeightUnit)

	var goalPct float64
	if weightLbs > 0 {
		goalPct = (weightLbs - goalLbs) / weightLbs * 100
	}

	var v Vector
	v[0] = float64(user.Age)
	v[1] = boolFeature(user.Sex == models.SexMale)
	v[2] = boolFeature(user.Sex == models.SexFemale)
	v[3] = weightLbs
	v[4] = estimateBMI(weightLbs)
	v[5] = goalPct
	v[6] = boolFeature(user.HasInsurance)
	fillComorbidities(&v, user.Comorbidities)
	return v
}

// ExperienceVector encodes an experience record as a feature vector with
// the same ordering as UserVector. Missing optional fields take the
// documented defaults: age 30, weight 0, loss percentage 0, no insurance.
func ExperienceVector(rec *models.ExperienceRecord) Vector {
	age := defaultExperienceAge
	if rec.Age != nil {
		age = float64(*rec.Age)
	}

	var weightLbs float64
	if rec.BeginningWeightLbs != nil && *rec.BeginningWeightLbs > 0 {
		weightLbs = *rec.BeginningWeightLbs
	}

	var bmi float64
	if weightLbs > 0 {
		bmi = estimateBMI(weightLbs)
	}

	var lossPct float64
	if rec.WeightLossPercentage != nil {
		lossPct = *rec.WeightLossPercentage
	}

	var v Vector
	v[0] = age
	v[1] = boolFeature(rec.Sex == models.SexMale)
	v[2] = boolFeature(rec.Sex == models.SexFemale)
	v[3] = weightLbs
	v[4] = bmi
	v[5] = lossPct
	v[6] = boolFeature(rec.HasInsurance != nil && *rec.HasInsurance)
	fillComorbidities(&v, rec.Comorbidities)
	return v
}

func fillComorbidities(v *Vector, conditions []string) {
	for i, name := range comorbidityVocabulary {
		v[7+i] = boolFeature(containsString(conditions, name))
	}
}

func boolFeature(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
