// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Severity is the reported intensity of a side effect.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// NormalizeSeverity maps a free-form severity string onto the known
// levels. Matching is case-insensitive after trimming; anything
// unrecognized, including the empty string, becomes moderate. The
// extraction pipeline emits lowercase values but corpus rows predating
// the current extractor carry mixed casing.
func NormalizeSeverity(s string) Severity {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityMild:
		return SeverityMild
	case SeveritySevere:
		return SeveritySevere
	default:
		return SeverityModerate
	}
}

// SideEffect is one side effect reported on an experience record, as
// extracted from the source discussion.
type SideEffect struct {
	Name     string   `json:"name"`
	Severity Severity `json:"severity,omitempty"`
}

// ExperienceRecord is one row of the peer experience corpus: a single
// user's outcome on a single drug, extracted from public discussion by
// the upstream pipeline. Field names use snake_case to match the
// extraction pipeline's export format and the store schema.
//
// Extraction is lossy, so every field except PrimaryDrug is optional.
// Pointer fields distinguish "not extracted" from a genuine zero.
// Consumers must tolerate nil values:
//
//   - vectorization substitutes the documented defaults (age 30,
//     weight 0, loss percentage 0)
//   - aggregation skips nil weight-loss, percentage, and cost values
//
// ID and CreatedAt identify the row in the store; ingestion assigns both
// when the source document carries neither.
type ExperienceRecord struct {
	ID          uuid.UUID `json:"id"`
	PrimaryDrug string    `json:"primary_drug"`

	// Outcome figures, all extracted in pounds
	BeginningWeightLbs   *float64 `json:"beginning_weight_lbs,omitempty"`
	WeightLossLbs        *float64 `json:"weight_loss_lbs,omitempty"`
	WeightLossPercentage *float64 `json:"weight_loss_percentage,omitempty"`

	// Demographics
	Age           *int     `json:"age,omitempty"`
	Sex           Sex      `json:"sex,omitempty"`
	HasInsurance  *bool    `json:"has_insurance,omitempty"`
	Comorbidities []string `json:"comorbidities,omitempty"`

	SideEffects  []SideEffect `json:"side_effects,omitempty"`
	CostPerMonth *float64     `json:"cost_per_month,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// HasDrug reports whether the record names a primary drug. Rows without
// one carry no usable outcome signal and are excluded from matching.
func (r *ExperienceRecord) HasDrug() bool {
	return strings.TrimSpace(r.PrimaryDrug) != ""
}
