// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akerrigan/glpcompass/internal/config"
	"github.com/akerrigan/glpcompass/internal/corpus"
	"github.com/akerrigan/glpcompass/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest an experience export into the corpus store",
	Long: "Validates an export file (JSON array or NDJSON of experience documents) " +
		"and inserts the valid records into the embedded corpus store. Prints an " +
		"ingest report as JSON: total, valid, invalid, and inserted counts.",
	RunE: runIngest,
}

var ingestFile string

//nolint:gochecknoinits // cobra wires commands in init by convention
func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "file", "f", "", "Path to export file (required)")

	if err := ingestCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Corpus.Source != config.SourceDuckDB {
		return fmt.Errorf("ingest writes to the embedded duckdb store; the %s corpus is owned by the extraction pipeline", cfg.Corpus.Source)
	}

	ctx := cmd.Context()

	store, err := corpus.OpenStore(cfg.Corpus.Store, logger)
	if err != nil {
		return fmt.Errorf("open corpus store: %w", err)
	}
	defer closeSource(store, logger)

	var journal *ingest.Journal
	if cfg.Ingest.JournalEnabled {
		journal, err = ingest.OpenJournal(cfg.Ingest.Journal, logger)
		if err != nil {
			return fmt.Errorf("open ingest journal: %w", err)
		}
		defer func() {
			if err := journal.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing ingest journal")
			}
		}()
	}

	ingester := ingest.NewIngester(store, journal, nil, logger)

	report, err := ingester.IngestFile(ctx, ingestFile)
	if err != nil {
		return fmt.Errorf("ingest %s: %w", ingestFile, err)
	}

	return writeJSON(report)
}
