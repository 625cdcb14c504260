// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/glpcompass/config.yaml",
	"/etc/glpcompass/config.yml",
}

// ConfigPathEnvVar overrides the config file search.
const ConfigPathEnvVar = "GLPCOMPASS_CONFIG"

// Load assembles the configuration from defaults, an optional YAML
// file, and environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration invalid: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file path, honoring
// the GLPCOMPASS_CONFIG override.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are config keys whose env-var values arrive as
// comma-separated strings but unmarshal into slices.
var sliceConfigPaths = []string{
	"api.cors_origins",
}

// processSliceFields splits comma-separated strings for known slice
// keys. YAML-sourced values are already slices and pass through.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings is the explicit environment-variable table. Unknown
// variables are skipped so arbitrary environment content cannot leak
// into configuration.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Corpus
	"corpus_source":               "corpus.source",
	"corpus_fetch_limit":          "corpus.fetch_limit",
	"duckdb_path":                 "corpus.store.path",
	"duckdb_threads":              "corpus.store.threads",
	"duckdb_max_memory":           "corpus.store.max_memory",
	"postgres_url":                "corpus.postgres.url",
	"postgres_table":              "corpus.postgres.table",
	"corpus_snapshot_ttl":         "corpus.provider.snapshot_ttl",
	"corpus_refresh_per_minute":   "corpus.provider.refresh_per_minute",
	"corpus_breaker_threshold":    "corpus.provider.breaker_threshold",
	"corpus_breaker_cooldown":     "corpus.provider.breaker_cooldown",
	"corpus_provider_fetch_limit": "corpus.provider.fetch_limit",

	// Recommendation engine
	"recommend_k_neighbors":       "recommend.k_neighbors",
	"recommend_min_similar_users": "recommend.min_similar_users",
	"recommend_workers":           "recommend.num_workers",

	// Ingestion
	"ingest_journal_enabled":     "ingest.journal_enabled",
	"ingest_journal_path":        "ingest.journal.path",
	"ingest_journal_sync_writes": "ingest.journal.sync_writes",

	// Events
	"events_enabled":        "events.enabled",
	"events_embedded":       "events.embedded",
	"events_url":            "events.url",
	"events_host":           "events.host",
	"events_port":           "events.port",
	"events_store_dir":      "events.store_dir",
	"events_stream_name":    "events.stream_name",
	"events_queue_group":    "events.queue_group",
	"events_durable_name":   "events.durable_name",
	"events_max_age":        "events.max_age",
	"events_max_reconnects": "events.max_reconnects",
	"events_reconnect_wait": "events.reconnect_wait",
	"events_ack_wait":       "events.ack_wait",

	// API
	"rate_limit_requests": "api.rate_limit_requests",
	"rate_limit_window":   "api.rate_limit_window",
	"cors_origins":        "api.cors_origins",
	"api_cache_ttl":       "api.cache_ttl",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransform maps environment variable names to koanf paths.
func envTransform(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
