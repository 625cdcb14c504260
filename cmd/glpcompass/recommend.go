// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/akerrigan/glpcompass/internal/api"
	"github.com/akerrigan/glpcompass/internal/models"
	"github.com/akerrigan/glpcompass/internal/recommend"
	"github.com/akerrigan/glpcompass/internal/validation"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend GLP-1 drugs for a user profile",
	Long: "Reads a user profile as JSON from a file or stdin and writes ranked drug " +
		"recommendations as JSON to stdout, computed from the experiences of the most " +
		"similar users in the corpus.",
	RunE: runRecommend,
}

var (
	recommendProfile    string
	recommendLimit      int
	recommendK          int
	recommendMinSimilar int
)

//nolint:gochecknoinits // cobra wires commands in init by convention
func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "-", "Path to profile JSON file, or - for stdin")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 0, "Maximum corpus records to load (0 = configured default)")
	recommendCmd.Flags().IntVar(&recommendK, "k", 0, "Similar users per drug (0 = configured default)")
	recommendCmd.Flags().IntVar(&recommendMinSimilar, "min-similar", 0, "Minimum similar users per drug (0 = configured default)")

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if recommendLimit > 0 {
		cfg.Corpus.FetchLimit = recommendLimit
	}
	if recommendK > 0 {
		cfg.Recommend.KNeighbors = recommendK
	}
	if recommendMinSimilar > 0 {
		cfg.Recommend.MinSimilarUsers = recommendMinSimilar
	}

	profile, err := readProfile(recommendProfile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	source, err := openSource(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open corpus source: %w", err)
	}
	defer closeSource(source, logger)

	records, err := source.FetchExperiences(ctx, cfg.Corpus.FetchLimit)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}

	engine, err := recommend.NewEngine(cfg.Recommend, logger)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	recs, err := engine.Recommend(ctx, profile, records)
	if err != nil {
		if errors.Is(err, recommend.ErrNoUsableCorpus) {
			return fmt.Errorf("not enough corpus data to recommend (loaded %d records): %w", len(records), err)
		}
		return err
	}

	return writeJSON(models.RecommendationSet{
		Recommendations:  recs,
		TotalExperiences: len(records),
	})
}

// readProfile loads and validates the profile, applying the same
// defaults the HTTP layer applies: age 35, sex "other".
func readProfile(path string) (*models.UserProfile, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open profile file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var profile models.UserProfile
	if err := json.NewDecoder(r).Decode(&profile); err != nil {
		return nil, fmt.Errorf("parse profile JSON: %w", err)
	}

	if profile.Age == 0 {
		profile.Age = api.DefaultProfileAge
	}
	if profile.Sex == "" {
		profile.Sex = api.DefaultProfileSex
	}

	if verr := validation.ValidateStruct(&profile); verr != nil {
		return nil, fmt.Errorf("invalid profile: %s", verr.Error())
	}
	return &profile, nil
}
