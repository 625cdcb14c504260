// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package main provides the glpcompass CLI: offline recommendations,
// export ingestion, and corpus statistics against the local store, plus
// a serve command for running the HTTP service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "glpcompass",
	Short: "GLP-1 peer experience recommendation engine",
	Long: "GLPCompass recommends GLP-1 medications from the aggregated outcomes of " +
		"similar users. Feed it a profile and it answers with ranked drugs, expected " +
		"weight loss, side-effect probabilities, and costs from the experience corpus.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
