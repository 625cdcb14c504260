// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/models"
)

// Engine runs the full recommendation pipeline. It is immutable after
// construction and therefore safe for concurrent use; every Recommend
// call is independent and takes its corpus as a parameter.
type Engine struct {
	config Config
	logger zerolog.Logger
}

// NewEngine creates an engine with the given configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config {
	cfg := e.config
	cfg.FeatureWeights = make(map[string]float64, len(e.config.FeatureWeights))
	for k, v := range e.config.FeatureWeights {
		cfg.FeatureWeights[k] = v
	}
	return cfg
}

// drugResult pairs a finished recommendation with the drug's encounter
// order so parallel workers cannot perturb the final ranking.
type drugResult struct {
	order int
	rec   *models.DrugRecommendation
}

// Recommend produces ranked drug recommendations for the user from the
// given corpus.
//
// Drugs qualify only when they have at least MinSimilarUsers corpus rows
// and, after neighbor selection, at least MinSimilarUsers neighbors.
// Drugs that fall short are omitted without error. The result is sorted
// by descending match score; ties keep the order drugs first appear in
// the corpus.
//
// Returns ErrNoUsableCorpus when the corpus is empty or no row names a
// primary drug, and ErrInvalidProfile when the profile cannot be
// vectorized. A valid corpus where no drug qualifies yields an empty
// slice and no error.
func (e *Engine) Recommend(ctx context.Context, user *models.UserProfile, corpus []models.ExperienceRecord) ([]models.DrugRecommendation, error) {
	start := time.Now()

	if user == nil || user.CurrentWeight <= 0 || user.GoalWeight <= 0 || user.Age <= 0 {
		return nil, ErrInvalidProfile
	}

	eligible, err := e.eligibleDrugs(corpus)
	if err != nil {
		return nil, err
	}

	logger := e.logger.With().
		Int("corpus_rows", len(corpus)).
		Int("eligible_drugs", len(eligible)).
		Logger()
	logger.Debug().Msg("generating recommendations")

	userVec := UserVector(user)
	results := e.processDrugs(ctx, userVec, user, corpus, eligible)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Encounter order first, then a stable sort by score, keeps ties
	// deterministic regardless of worker scheduling.
	sort.Slice(results, func(i, j int) bool { return results[i].order < results[j].order })

	recommendations := make([]models.DrugRecommendation, 0, len(results))
	for _, r := range results {
		recommendations = append(recommendations, *r.rec)
	}
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].MatchScore > recommendations[j].MatchScore
	})

	logger.Info().
		Int("recommendations", len(recommendations)).
		Dur("elapsed", time.Since(start)).
		Msg("recommendations generated")

	return recommendations, nil
}

// eligibleDrugs returns the drugs with enough raw corpus rows to clear
// the eligibility bar, in the order they first appear in the corpus.
func (e *Engine) eligibleDrugs(corpus []models.ExperienceRecord) ([]string, error) {
	counts := make(map[string]int)
	order := make([]string, 0)

	for i := range corpus {
		if !corpus[i].HasDrug() {
			continue
		}
		drug := corpus[i].PrimaryDrug
		if counts[drug] == 0 {
			order = append(order, drug)
		}
		counts[drug]++
	}

	if len(order) == 0 {
		return nil, ErrNoUsableCorpus
	}

	eligible := make([]string, 0, len(order))
	for _, drug := range order {
		if counts[drug] >= e.config.MinSimilarUsers {
			eligible = append(eligible, drug)
		}
	}
	return eligible, nil
}

// processDrugs runs the per-drug pipeline across a bounded worker pool.
// Each drug is independent; results carry their encounter order so the
// caller can restore determinism.
func (e *Engine) processDrugs(ctx context.Context, userVec Vector, user *models.UserProfile, corpus []models.ExperienceRecord, drugs []string) []drugResult {
	workers := e.config.NumWorkers
	if workers > len(drugs) {
		workers = len(drugs)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	results := make([]drugResult, 0, len(drugs))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					return
				}
				rec := e.processDrug(userVec, user, corpus, drugs[idx])
				if rec == nil {
					continue
				}
				mu.Lock()
				results = append(results, drugResult{order: idx, rec: rec})
				mu.Unlock()
			}
		}()
	}

feed:
	for idx := range drugs {
		select {
		case jobs <- idx:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// processDrug runs neighbor search, aggregation, and scoring for one
// drug. Returns nil when the drug falls short of the eligibility bar or
// produces no aggregate.
func (e *Engine) processDrug(userVec Vector, user *models.UserProfile, corpus []models.ExperienceRecord, drug string) *models.DrugRecommendation {
	neighbors := FindNeighbors(userVec, corpus, drug, e.config.KNeighbors)
	if len(neighbors) < e.config.MinSimilarUsers {
		e.logger.Debug().
			Str("drug", drug).
			Int("neighbors", len(neighbors)).
			Msg("skipping drug below eligibility bar")
		return nil
	}

	unit := user.WeightUnit.Normalized()
	summary := Aggregate(neighbors, unit)
	if summary == nil {
		return nil
	}

	score := MatchScore(summary, user)
	pros, cons := GenerateProsCons(summary, user)

	rec := &models.DrugRecommendation{
		Drug:       drug,
		MatchScore: roundPercent(score),
		ExpectedWeightLoss: models.WeightLossStats{
			Min:  roundTo1(summary.WeightLossMin),
			Max:  roundTo1(summary.WeightLossMax),
			Avg:  roundTo1(summary.WeightLossAvg),
			Unit: unit,
		},
		SuccessRate:           summary.SuccessRate,
		SideEffectProbability: summary.SideEffects,
		SimilarUserCount:      summary.SimilarUserCount,
		Pros:                  pros,
		Cons:                  cons,
	}
	if rec.SideEffectProbability == nil {
		rec.SideEffectProbability = []models.SideEffectProbability{}
	}
	if summary.hasCost() {
		cost := roundPercent(*summary.EstimatedCost)
		rec.EstimatedCost = &cost
	}
	return rec
}

// roundTo1 rounds to one decimal, half away from zero.
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}
