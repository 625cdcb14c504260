// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import "fmt"

// Config contains the engine's tuning knobs. The zero value is not
// usable; construct via DefaultConfig and override fields as needed.
type Config struct {
	// KNeighbors is the number of similar experiences selected per drug.
	KNeighbors int `json:"k_neighbors" koanf:"k_neighbors"`

	// MinSimilarUsers is the eligibility bar: a drug needs at least this
	// many corpus rows AND at least this many selected neighbors before
	// it may appear in results.
	MinSimilarUsers int `json:"min_similar_users" koanf:"min_similar_users"`

	// NumWorkers bounds the per-request worker pool that processes
	// eligible drugs in parallel. Each drug's pipeline is independent,
	// so parallelism does not affect results.
	NumWorkers int `json:"num_workers" koanf:"num_workers"`

	// FeatureWeights is a per-feature weight map accepted for forward
	// compatibility with a weighted-similarity mode. The current
	// similarity computation is plain cosine and does not apply these
	// weights; they are validated and stored only. Keys: age, sex,
	// weight, bmi_similarity, comorbidities, insurance.
	FeatureWeights map[string]float64 `json:"feature_weights" koanf:"feature_weights"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		KNeighbors:      15,
		MinSimilarUsers: 5,
		NumWorkers:      4,
		FeatureWeights:  DefaultFeatureWeights(),
	}
}

// DefaultFeatureWeights returns the default per-feature weight map.
// The values sum to 1.0.
func DefaultFeatureWeights() map[string]float64 {
	return map[string]float64{
		"age":            0.15,
		"sex":            0.10,
		"weight":         0.30,
		"bmi_similarity": 0.20,
		"comorbidities":  0.15,
		"insurance":      0.10,
	}
}

// knownFeatureWeightKeys guards against silently accepted typos in
// custom weight maps.
var knownFeatureWeightKeys = map[string]struct{}{
	"age":            {},
	"sex":            {},
	"weight":         {},
	"bmi_similarity": {},
	"comorbidities":  {},
	"insurance":      {},
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.KNeighbors <= 0 {
		return fmt.Errorf("k_neighbors must be positive, got %d", c.KNeighbors)
	}
	if c.MinSimilarUsers <= 0 {
		return fmt.Errorf("min_similar_users must be positive, got %d", c.MinSimilarUsers)
	}
	if c.MinSimilarUsers > c.KNeighbors {
		return fmt.Errorf("min_similar_users (%d) cannot exceed k_neighbors (%d): no drug could ever qualify",
			c.MinSimilarUsers, c.KNeighbors)
	}
	if c.NumWorkers <= 0 {
		return fmt.Errorf("num_workers must be positive, got %d", c.NumWorkers)
	}
	for key, w := range c.FeatureWeights {
		if _, ok := knownFeatureWeightKeys[key]; !ok {
			return fmt.Errorf("unknown feature weight key %q", key)
		}
		if w < 0 {
			return fmt.Errorf("feature weight %q must be non-negative, got %v", key, w)
		}
	}
	return nil
}
