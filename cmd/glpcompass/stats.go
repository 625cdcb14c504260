// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print corpus statistics as JSON",
	Long: "Prints the corpus statistics the API serves on /api/v1/corpus/stats: total " +
		"experiences, field coverage, and per-drug record counts.",
	RunE: runStats,
}

//nolint:gochecknoinits // cobra wires commands in init by convention
func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	source, err := openSource(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open corpus source: %w", err)
	}
	defer closeSource(source, logger)

	stats, err := source.Stats(ctx)
	if err != nil {
		return fmt.Errorf("query corpus stats: %w", err)
	}

	return writeJSON(stats)
}
