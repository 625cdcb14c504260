// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import "errors"

// Engine errors. Data insufficiency is never an error: drugs without
// enough neighbors are silently excluded. These sentinels mark the two
// conditions the calling layer must distinguish from an empty result.
var (
	// ErrNoUsableCorpus means the experience corpus is empty or no row
	// names a primary drug. Distinct from a valid corpus where no drug
	// meets the eligibility bar, which returns an empty slice and no
	// error.
	ErrNoUsableCorpus = errors.New("no usable experience data in corpus")

	// ErrInvalidProfile means the user profile cannot be vectorized even
	// with the defensive defaults, e.g. a non-positive current weight.
	// Request validation should have rejected it upstream.
	ErrInvalidProfile = errors.New("invalid user profile")
)
