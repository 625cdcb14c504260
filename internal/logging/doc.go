// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package logging provides centralized zerolog-based structured logging for GLPCompass.
//
// Every component logs through this package so that output format, level,
// and field conventions stay uniform across the recommendation engine, the
// corpus store, ingestion, and the HTTP layer.
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output for production, console output for development
//   - Context-aware logging with request/correlation ID propagation
//   - An slog adapter so suture's supervisor logging flows through zerolog
//
// # Quick Start
//
//	import "github.com/akerrigan/glpcompass/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("drug", drug).Int("neighbors", n).Msg("Drug scored")
//	logging.Error().Err(err).Msg("Corpus fetch failed")
//
//	// With request context (adds request_id/correlation_id fields)
//	logging.Ctx(ctx).Info().Msg("Recommendation served")
//
// # Conventions
//
// Component loggers carry a "component" field:
//
//	log := logging.WithComponent("recommend")
//	log.Debug().Str("drug", drug).Msg("Skipping drug, not enough neighbors")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated chain
// emits nothing. Prefer structured fields over Msgf formatting.
package logging
