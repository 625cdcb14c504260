// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package models

// WeightUnit is the unit a user reports body weights in.
type WeightUnit string

const (
	UnitLbs WeightUnit = "lbs"
	UnitKg  WeightUnit = "kg"
)

// Valid reports whether the unit is one of the accepted values.
func (u WeightUnit) Valid() bool {
	return u == UnitLbs || u == UnitKg
}

// Normalized coerces unrecognized unit strings to lbs. Corpus weights are
// stored in pounds, so lbs is the safe interpretation for anything request
// validation did not catch.
func (u WeightUnit) Normalized() WeightUnit {
	if u == UnitKg {
		return UnitKg
	}
	return UnitLbs
}

// Sex is the self-reported sex/gender value carried on profiles and
// extracted experience records.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexFtm    Sex = "ftm"
	SexMtf    Sex = "mtf"
	SexOther  Sex = "other"
)

// Valid reports whether the value is one of the accepted sex values.
// The empty string is not valid here; absence is handled by the request
// layer, which defaults missing sex to "other".
func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexFtm, SexMtf, SexOther:
		return true
	}
	return false
}

// UserProfile describes the requesting user for one recommendation call.
//
// JSON field names are camelCase to match the request format produced by
// downstream clients. Validation tags are enforced by the API/CLI layer
// via the validation package; the recommendation core assumes a profile
// that already passed them.
//
// Fields:
//   - CurrentWeight/GoalWeight: positive, both in WeightUnit
//   - Age: required by the engine; the request layer defaults it to 35
//     when the client omits it
//   - Sex: the request layer defaults a missing value to "other"
//   - State/Country/InsuranceProvider: informational only, never used in
//     matching
//   - Comorbidities: matched against the fixed vocabulary (diabetes,
//     pcos, hypertension, sleep apnea, hypothyroidism)
//   - MaxBudget: monthly budget in the record currency; nil means no
//     budget constraint
//   - SideEffectConcerns: compared against aggregated side-effect names,
//     which are Title Case
type UserProfile struct {
	CurrentWeight      float64    `json:"currentWeight" validate:"required,gt=0"`
	WeightUnit         WeightUnit `json:"weightUnit" validate:"required,weightunit"`
	GoalWeight         float64    `json:"goalWeight" validate:"required,gt=0"`
	Age                int        `json:"age" validate:"omitempty,gte=18,lte=100"`
	Sex                Sex        `json:"sex" validate:"omitempty,sexvalue"`
	State              string     `json:"state,omitempty"`
	Country            string     `json:"country,omitempty"`
	Comorbidities      []string   `json:"comorbidities,omitempty" validate:"omitempty,dive,max=100"`
	HasInsurance       bool       `json:"hasInsurance"`
	InsuranceProvider  string     `json:"insuranceProvider,omitempty"`
	MaxBudget          *float64   `json:"maxBudget,omitempty" validate:"omitempty,gt=0"`
	SideEffectConcerns []string   `json:"sideEffectConcerns,omitempty" validate:"omitempty,dive,max=100"`
}
