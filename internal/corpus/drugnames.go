// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package corpus

import "strings"

// canonicalDrugNames maps lowercased variant spellings to the one
// canonical form used everywhere downstream. The engine groups records
// by exact drug-name match, so "ozempic", "Ozempic" and "OZEMPIC" must
// collapse to a single key before they reach it.
//
// The table covers the names the extraction pipeline actually emits:
// GLP-1 brands, generics, compounded variants, and the common non-GLP-1
// co-medications that show up in the source discussions.
var canonicalDrugNames = map[string]string{
	// Brand names
	"ozempic":   "Ozempic",
	"wegovy":    "Wegovy",
	"mounjaro":  "Mounjaro",
	"zepbound":  "Zepbound",
	"saxenda":   "Saxenda",
	"victoza":   "Victoza",
	"trulicity": "Trulicity",
	"rybelsus":  "Rybelsus",

	// Generic names
	"semaglutide": "Semaglutide",
	"tirzepatide": "Tirzepatide",
	"liraglutide": "Liraglutide",
	"dulaglutide": "Dulaglutide",
	"retatrutide": "Retatrutide",

	// Compounded variants
	"compounded semaglutide": "Compounded Semaglutide",
	"compounded tirzepatide": "Compounded Tirzepatide",
	"compound tirzepatide":   "Compounded Tirzepatide",
	"compounded glp-1":       "Compounded GLP-1",

	// Generic class references
	"glp-1": "GLP-1",
	"glp1":  "GLP-1",

	// Non-GLP-1 co-medications, abbreviations expanded
	"metformin": "Metformin",
	"trt":       "Testosterone",
}

// StandardizeDrugName maps a raw extracted drug name onto its canonical
// form. Unknown names are title-cased as-is rather than rejected; the
// corpus keeps whatever drugs the discussions mention. Returns "" for
// names that are empty after trimming.
func StandardizeDrugName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}

	if canonical, ok := canonicalDrugNames[strings.ToLower(name)]; ok {
		return canonical
	}
	return titleCase(name)
}

// titleCase uppercases the first letter of each space-separated word and
// lowercases the rest. Drug names are plain ASCII.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
