// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package models defines the shared data types for GLPCompass.
//
// The three central types mirror the recommendation data flow:
//
//   - UserProfile: the requesting user's demographics, goals, and
//     preferences (input)
//   - ExperienceRecord: one peer's extracted drug outcome, one row of
//     the experience corpus (input)
//   - DrugRecommendation: a ranked, explained recommendation (output)
//
// JSON field names on the recommendation wire types are camelCase to
// match the format consumed by downstream clients. API envelope types
// (APIResponse, Metadata, APIError) use snake_case like the rest of the
// HTTP surface.
//
// All types here are plain data: construction and mutation rules live
// with the packages that produce them (recommend, corpus, ingest).
package models
