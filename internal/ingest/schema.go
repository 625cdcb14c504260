// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package ingest

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// experienceSchema validates one export document. It mirrors the
// extraction pipeline's output contract: primary_drug is the only
// required field, everything else is optional because extraction is
// lossy, but present fields must carry the right shape.
const experienceSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["primary_drug"],
	"properties": {
		"id": {"type": "string"},
		"primary_drug": {"type": "string", "minLength": 1},
		"beginning_weight_lbs": {"type": ["number", "null"], "minimum": 0},
		"weight_loss_lbs": {"type": ["number", "null"]},
		"weight_loss_percentage": {"type": ["number", "null"]},
		"age": {"type": ["integer", "null"], "minimum": 0, "maximum": 120},
		"sex": {"type": ["string", "null"], "enum": ["male", "female", "ftm", "mtf", "other", "", null]},
		"has_insurance": {"type": ["boolean", "null"]},
		"comorbidities": {
			"type": ["array", "null"],
			"items": {"type": "string"}
		},
		"side_effects": {
			"type": ["array", "null"],
			"items": {
				"type": "object",
				"required": ["name"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"severity": {"type": "string"}
				}
			}
		},
		"cost_per_month": {"type": ["number", "null"], "minimum": 0},
		"created_at": {"type": "string"}
	}
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(experienceSchema))
	if err != nil {
		panic(fmt.Sprintf("ingest: compile experience schema: %v", err))
	}
	return schema
}

// validateDocument checks one raw export document against the schema.
// Returns nil when valid, otherwise an error summarizing the violations.
func validateDocument(doc []byte) error {
	result, err := compiledSchema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validate document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		msgs = append(msgs, re.String())
	}
	return fmt.Errorf("schema violation: %s", strings.Join(msgs, "; "))
}
