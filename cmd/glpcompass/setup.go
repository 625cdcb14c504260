// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/config"
	"github.com/akerrigan/glpcompass/internal/corpus"
	"github.com/akerrigan/glpcompass/internal/logging"
)

var flagVerbose bool

//nolint:gochecknoinits // cobra wires flags in init by convention
func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
}

// loadConfig loads the service configuration and quiets logging for
// CLI use: warnings only unless --verbose, console format, stderr, so
// stdout carries nothing but the command's JSON output.
func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load configuration: %w", err)
	}

	logCfg := cfg.Logging.ToLogging()
	logCfg.Format = "console"
	logCfg.Level = "warn"
	if flagVerbose {
		logCfg.Level = "debug"
	}
	logging.Init(logCfg)

	return cfg, logging.Logger(), nil
}

// openSource opens the configured corpus source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func openSource(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (corpus.Source, error) {
	switch cfg.Corpus.Source {
	case config.SourcePostgres:
		return corpus.OpenPostgres(ctx, cfg.Corpus.Postgres, logger)
	default:
		return corpus.OpenStore(cfg.Corpus.Store, logger)
	}
}

// closeSource closes the source, logging rather than failing the
// command on error.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func closeSource(source corpus.Source, logger zerolog.Logger) {
	if err := source.Close(); err != nil {
		logger.Warn().Err(err).Msg("error closing corpus source")
	}
}

// writeJSON prints v as indented JSON on stdout.
func writeJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
