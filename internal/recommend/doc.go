// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package recommend implements the drug recommendation core: a
// k-nearest-neighbor similarity engine over extracted peer experience
// records.
//
// The pipeline for one request:
//
//  1. Vectorize the user profile and every corpus row into a fixed
//     12-dimension feature vector (vector.go).
//  2. Per drug, select the top-k rows by cosine similarity to the user
//     (similarity.go).
//  3. Reduce each drug's neighbor set to an OutcomeSummary: weight-loss
//     range, success rate, side-effect frequencies, median cost, mean
//     similarity (aggregate.go).
//  4. Combine the summary with the user's preferences into a 0-100
//     match score and human-readable pros/cons (score.go, explain.go).
//  5. Rank drugs by descending match score (engine.go).
//
// The package is pure computation. It holds no state between calls, does
// no I/O, and takes the experience corpus as a parameter on every call;
// corpus storage, caching, and refresh belong to the corpus package.
// Engine is safe for concurrent use because it is immutable after
// construction.
package recommend
