// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	_ "github.com/akerrigan/glpcompass/docs" // Import generated swagger docs
	"github.com/akerrigan/glpcompass/internal/api"
	"github.com/akerrigan/glpcompass/internal/cache"
	"github.com/akerrigan/glpcompass/internal/config"
	"github.com/akerrigan/glpcompass/internal/corpus"
	"github.com/akerrigan/glpcompass/internal/ingest"
	"github.com/akerrigan/glpcompass/internal/logging"
	"github.com/akerrigan/glpcompass/internal/recommend"
	"github.com/akerrigan/glpcompass/internal/supervisor"
	"github.com/akerrigan/glpcompass/internal/supervisor/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the GLPCompass HTTP service",
	Long: "Runs the recommendation API under process supervision. This is the same " +
		"service as the glpcompass-server binary minus the NATS event spine, which " +
		"needs a server binary built with -tags nats.",
	RunE: runServe,
}

//nolint:gochecknoinits // cobra wires commands in init by convention
func init() {
	rootCmd.AddCommand(serveCmd)
}

//nolint:gocyclo // sequential service assembly
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Full service logging, not the CLI's quiet default.
	logging.Init(cfg.Logging.ToLogging())
	logger := logging.Logger()

	if cfg.Events.Enabled {
		logging.Warn().Msg("Event spine not available under 'glpcompass serve' - use glpcompass-server built with -tags nats")
	}

	logging.Info().
		Str("corpus_source", cfg.Corpus.Source).
		Str("addr", cfg.ListenAddr()).
		Msg("Starting GLPCompass")

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	source, err := openSource(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open corpus source: %w", err)
	}
	defer closeSource(source, logger)

	provider := corpus.NewProvider(source, cfg.Corpus.Provider, logger)

	engine, err := recommend.NewEngine(cfg.Recommend, logger)
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}

	tree, err := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	var respCache cache.Cacher
	if cfg.API.CacheTTL > 0 {
		respCache = cache.New(cfg.API.CacheTTL)
	}

	handler := api.NewHandler(source, provider, engine, respCache, cfg.API.CacheTTL, "dev", logger)

	// Journal replay and supervised maintenance, duckdb store only.
	if cfg.Ingest.JournalEnabled {
		if writer, ok := source.(corpus.Writer); ok {
			journal, err := ingest.OpenJournal(cfg.Ingest.Journal, logger)
			if err != nil {
				return fmt.Errorf("open ingest journal: %w", err)
			}
			defer func() {
				if err := journal.Close(); err != nil {
					logging.Error().Err(err).Msg("Error closing ingest journal")
				}
			}()

			notifier := ingest.NotifierFunc(func(_ context.Context, _ int) error {
				provider.Invalidate()
				handler.InvalidateCache()
				return nil
			})
			ingester := ingest.NewIngester(writer, journal, notifier, logger)
			if replayed, err := ingester.Replay(ctx); err != nil {
				logging.Warn().Err(err).Msg("Journal replay failed (will retry pending batches next start)")
			} else if replayed > 0 {
				logging.Info().Int("batches", replayed).Msg("Replayed unconfirmed journal batches")
			}

			tree.AddDataService(services.NewJournalMaintenanceService(journal, 0, logger))
		} else {
			logging.Warn().Msg("Journal enabled but the corpus source is read-only - skipping journal setup")
		}
	}

	chiMW := api.NewChiMiddlewareFromConfig(cfg.API.CORSOrigins, cfg.API.RateLimitReqs, cfg.API.RateLimitWindow)
	router := api.NewRouter(handler, chiMW)

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}

	logging.Info().Msg("GLPCompass stopped gracefully")
	return nil
}
