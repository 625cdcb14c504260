// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.KNeighbors != 15 {
		t.Errorf("KNeighbors = %d, want 15", cfg.KNeighbors)
	}
	if cfg.MinSimilarUsers != 5 {
		t.Errorf("MinSimilarUsers = %d, want 5", cfg.MinSimilarUsers)
	}
}

func TestDefaultFeatureWeightsSumToOne(t *testing.T) {
	t.Parallel()

	var sum float64
	for _, w := range DefaultFeatureWeights() {
		sum += w
	}
	if !almostEqual(sum, 1.0, 1e-9) {
		t.Errorf("feature weights sum = %v, want 1.0", sum)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mod     func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero k", func(c *Config) { c.KNeighbors = 0 }, true},
		{"negative k", func(c *Config) { c.KNeighbors = -1 }, true},
		{"zero min users", func(c *Config) { c.MinSimilarUsers = 0 }, true},
		{"min exceeds k", func(c *Config) { c.MinSimilarUsers = 20 }, true},
		{"min equals k", func(c *Config) { c.MinSimilarUsers = 15 }, false},
		{"zero workers", func(c *Config) { c.NumWorkers = 0 }, true},
		{"unknown weight key", func(c *Config) { c.FeatureWeights = map[string]float64{"height": 0.5} }, true},
		{"negative weight", func(c *Config) { c.FeatureWeights = map[string]float64{"age": -0.1} }, true},
		{"custom valid weights", func(c *Config) {
			c.FeatureWeights = map[string]float64{"age": 0.5, "weight": 0.5}
		}, false},
		{"nil weights accepted", func(c *Config) { c.FeatureWeights = nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mod(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
