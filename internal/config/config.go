// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package config

import (
	"fmt"
	"time"

	"github.com/akerrigan/glpcompass/internal/corpus"
	"github.com/akerrigan/glpcompass/internal/events"
	"github.com/akerrigan/glpcompass/internal/ingest"
	"github.com/akerrigan/glpcompass/internal/logging"
	"github.com/akerrigan/glpcompass/internal/recommend"
)

// Corpus source kinds.
const (
	SourceDuckDB   = "duckdb"
	SourcePostgres = "postgres"
)

// Config is the root service configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Corpus    CorpusConfig     `koanf:"corpus"`
	Recommend recommend.Config `koanf:"recommend"`
	Ingest    IngestConfig     `koanf:"ingest"`
	Events    events.Config    `koanf:"events"`
	API       APIConfig        `koanf:"api"`
	Logging   LoggingConfig    `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CorpusConfig selects and configures the experience source.
type CorpusConfig struct {
	// Source is "duckdb" (embedded, default) or "postgres" (the hosted
	// database an external extraction pipeline writes to).
	Source   string                `koanf:"source"`
	Store    corpus.StoreConfig    `koanf:"store"`
	Postgres corpus.PostgresConfig `koanf:"postgres"`
	Provider corpus.ProviderConfig `koanf:"provider"`

	// FetchLimit bounds the rows loaded per recommendation pass.
	FetchLimit int `koanf:"fetch_limit"`
}

// IngestConfig configures ingestion and its optional journal.
type IngestConfig struct {
	// JournalEnabled turns on the durable BadgerDB batch journal.
	JournalEnabled bool                 `koanf:"journal_enabled"`
	Journal        ingest.JournalConfig `koanf:"journal"`
}

// APIConfig configures the HTTP API surface.
type APIConfig struct {
	RateLimitReqs   int           `koanf:"rate_limit_requests"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`

	// CacheTTL bounds the GET response cache. Zero disables it.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// LoggingConfig mirrors logging.Config with koanf tags.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ToLogging converts to the logging package's config.
func (l LoggingConfig) ToLogging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller
	return cfg
}

// defaultConfig returns the built-in defaults, applied before the file
// and environment layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Corpus: CorpusConfig{
			Source:     SourceDuckDB,
			Store:      corpus.DefaultStoreConfig(),
			Postgres:   corpus.DefaultPostgresConfig(),
			Provider:   corpus.DefaultProviderConfig(),
			FetchLimit: corpus.DefaultFetchLimit,
		},
		Recommend: recommend.DefaultConfig(),
		Ingest: IngestConfig{
			JournalEnabled: false,
			Journal:        ingest.DefaultJournalConfig(),
		},
		Events: events.DefaultConfig(),
		API: APIConfig{
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
			CacheTTL:        time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server: port %d out of range", c.Server.Port)
	}

	switch c.Corpus.Source {
	case SourceDuckDB:
		if c.Corpus.Store.Path == "" {
			return fmt.Errorf("corpus: store path is required for the duckdb source")
		}
	case SourcePostgres:
		if c.Corpus.Postgres.URL == "" {
			return fmt.Errorf("corpus: postgres url is required for the postgres source")
		}
	default:
		return fmt.Errorf("corpus: unknown source %q (want %s or %s)",
			c.Corpus.Source, SourceDuckDB, SourcePostgres)
	}
	if c.Corpus.FetchLimit <= 0 {
		return fmt.Errorf("corpus: fetch_limit must be positive, got %d", c.Corpus.FetchLimit)
	}

	if err := c.Recommend.Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	if c.Ingest.JournalEnabled && c.Ingest.Journal.Path == "" {
		return fmt.Errorf("ingest: journal path is required when the journal is enabled")
	}
	if err := c.Events.Validate(); err != nil {
		return err
	}

	if c.API.RateLimitReqs <= 0 {
		return fmt.Errorf("api: rate_limit_requests must be positive, got %d", c.API.RateLimitReqs)
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api: rate_limit_window must be positive, got %v", c.API.RateLimitWindow)
	}
	return nil
}

// ListenAddr joins host and port for the HTTP server.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
