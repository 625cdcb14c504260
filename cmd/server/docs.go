// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package main provides the GLPCompass HTTP server
//
// GLPCompass recommends GLP-1 medications from the aggregated outcomes
// of users with a similar starting point.
//
// @title GLPCompass API
// @version 1.0
// @description Peer-experience recommendation engine for GLP-1 medications
// @description
// @description ## How it works
// @description
// @description POST a user profile to `/api/v1/recommendations` and the engine
// @description finds the most similar users in the experience corpus, then
// @description aggregates their outcomes per drug: expected weight loss,
// @description side-effect probabilities, and monthly cost.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Health endpoints have a separate, higher limit.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-08-24T12:34:56Z"
// @description   }
// @description }
// @description ```
// @description
// @description GLPCompass is not medical advice. Recommendations reflect the
// @description self-reported experiences of similar users, nothing more.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/akerrigan/glpcompass/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Profile-based drug recommendations from the experience corpus
//
// @tag.name Corpus
// @tag.description Corpus statistics and drug inventory
//
// @tag.name System
// @tag.description Health and readiness probes
package main
