// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultsValidate(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration invalid: %v", err)
	}
	if cfg.Corpus.Source != SourceDuckDB {
		t.Errorf("default source = %q, want duckdb", cfg.Corpus.Source)
	}
	if cfg.Recommend.KNeighbors != 15 || cfg.Recommend.MinSimilarUsers != 5 {
		t.Errorf("recommend defaults = %d/%d, want 15/5",
			cfg.Recommend.KNeighbors, cfg.Recommend.MinSimilarUsers)
	}
}

func TestValidateRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 0 }},
		{"unknown source", func(c *Config) { c.Corpus.Source = "mysql" }},
		{"duckdb without path", func(c *Config) { c.Corpus.Store.Path = "" }},
		{"postgres without url", func(c *Config) { c.Corpus.Source = SourcePostgres }},
		{"zero fetch limit", func(c *Config) { c.Corpus.FetchLimit = 0 }},
		{"bad recommend knobs", func(c *Config) { c.Recommend.KNeighbors = -1 }},
		{"journal enabled without path", func(c *Config) {
			c.Ingest.JournalEnabled = true
			c.Ingest.Journal.Path = ""
		}},
		{"zero rate limit", func(c *Config) { c.API.RateLimitReqs = 0 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil error")
			}
		})
	}
}

func TestLoadLayersFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9090
corpus:
  fetch_limit: 250
recommend:
  k_neighbors: 25
api:
  cors_origins:
    - https://app.example.com
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want file value 9090", cfg.Server.Port)
	}
	if cfg.Corpus.FetchLimit != 250 {
		t.Errorf("fetch limit = %d, want 250", cfg.Corpus.FetchLimit)
	}
	if cfg.Recommend.KNeighbors != 25 {
		t.Errorf("k_neighbors = %d, want 25", cfg.Recommend.KNeighbors)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "https://app.example.com" {
		t.Errorf("cors origins = %v, want file value", cfg.API.CORSOrigins)
	}
	// Untouched keys keep their defaults.
	if cfg.Recommend.MinSimilarUsers != 5 {
		t.Errorf("min_similar_users = %d, want default 5", cfg.Recommend.MinSimilarUsers)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("CORPUS_SNAPSHOT_TTL", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env value 7070", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.API.CORSOrigins) != 2 || cfg.API.CORSOrigins[1] != "https://b.example.com" {
		t.Errorf("cors origins = %v, want comma-split env value", cfg.API.CORSOrigins)
	}
	if cfg.Corpus.Provider.SnapshotTTL != 90*time.Second {
		t.Errorf("snapshot ttl = %v, want 90s", cfg.Corpus.Provider.SnapshotTTL)
	}
}

func TestLoadUnknownEnvVarsIgnored(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("RANDOM_UNRELATED_VAR", "true")

	if _, err := Load(); err != nil {
		t.Fatalf("Load() error = %v, unknown env vars must be skipped", err)
	}
}

func TestListenAddr(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8081
	if got := cfg.ListenAddr(); got != "127.0.0.1:8081" {
		t.Errorf("ListenAddr() = %q, want 127.0.0.1:8081", got)
	}
}
