// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package corpus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/akerrigan/glpcompass/internal/models"
)

// ProviderConfig tunes the snapshot provider.
type ProviderConfig struct {
	// SnapshotTTL is how long a fetched corpus snapshot stays fresh.
	SnapshotTTL time.Duration `koanf:"snapshot_ttl"`

	// FetchLimit is passed to the source on refresh.
	FetchLimit int `koanf:"fetch_limit"`

	// RefreshPerMinute throttles how often an expired snapshot may
	// trigger a source read. Requests beyond the throttle serve the
	// stale snapshot instead of stampeding the store.
	RefreshPerMinute int `koanf:"refresh_per_minute"`

	// BreakerThreshold is the consecutive source-failure count that
	// opens the circuit.
	BreakerThreshold uint32 `koanf:"breaker_threshold"`

	// BreakerCooldown is how long the circuit stays open before a
	// half-open probe.
	BreakerCooldown time.Duration `koanf:"breaker_cooldown"`
}

// DefaultProviderConfig returns the production defaults.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		SnapshotTTL:      5 * time.Minute,
		FetchLimit:       DefaultFetchLimit,
		RefreshPerMinute: 12,
		BreakerThreshold: 5,
		BreakerCooldown:  30 * time.Second,
	}
}

// snapshot is one fetched corpus with its expiry.
type snapshot struct {
	records   []models.ExperienceRecord
	fetchedAt time.Time
	expiresAt time.Time
}

// Provider serves corpus snapshots to the recommendation service. It
// caches the last fetch for SnapshotTTL, throttles refreshes, and runs
// source reads through a circuit breaker; while the source is broken or
// throttled, the last good snapshot keeps serving (stale reads beat
// failed recommendations for this workload).
type Provider struct {
	source  Source
	cfg     ProviderConfig
	logger  zerolog.Logger
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]models.ExperienceRecord]

	mu   sync.RWMutex
	snap *snapshot
}

// NewProvider wraps a source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewProvider(source Source, cfg ProviderConfig, logger zerolog.Logger) *Provider {
	if cfg.SnapshotTTL <= 0 {
		cfg.SnapshotTTL = 5 * time.Minute
	}
	if cfg.FetchLimit <= 0 {
		cfg.FetchLimit = DefaultFetchLimit
	}
	if cfg.RefreshPerMinute <= 0 {
		cfg.RefreshPerMinute = 12
	}
	if cfg.BreakerThreshold == 0 {
		cfg.BreakerThreshold = 5
	}
	if cfg.BreakerCooldown <= 0 {
		cfg.BreakerCooldown = 30 * time.Second
	}

	componentLogger := logger.With().Str("component", "corpus_provider").Logger()

	breaker := gobreaker.NewCircuitBreaker[[]models.ExperienceRecord](gobreaker.Settings{
		Name:    "corpus-source",
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			componentLogger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("corpus source breaker state change")
		},
	})

	return &Provider{
		source:  source,
		cfg:     cfg,
		logger:  componentLogger,
		limiter: rate.NewLimiter(rate.Limit(float64(cfg.RefreshPerMinute)/60.0), 1),
		breaker: breaker,
	}
}

// Experiences returns the current corpus snapshot, refreshing it from
// the source when expired. On refresh failure any previous snapshot is
// served stale; the error propagates only when no snapshot exists yet.
func (p *Provider) Experiences(ctx context.Context) ([]models.ExperienceRecord, error) {
	p.mu.RLock()
	snap := p.snap
	p.mu.RUnlock()

	if snap != nil && time.Now().Before(snap.expiresAt) {
		return snap.records, nil
	}

	// Expired or absent. Only one throttle token triggers a source
	// read; everyone else keeps the stale snapshot.
	if snap != nil && !p.limiter.Allow() {
		return snap.records, nil
	}

	records, err := p.refresh(ctx)
	if err != nil {
		if snap != nil {
			p.logger.Warn().Err(err).
				Time("snapshot_age", snap.fetchedAt).
				Msg("corpus refresh failed, serving stale snapshot")
			return snap.records, nil
		}
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	return records, nil
}

// refresh reads the source through the circuit breaker and installs the
// new snapshot.
func (p *Provider) refresh(ctx context.Context) ([]models.ExperienceRecord, error) {
	records, err := p.breaker.Execute(func() ([]models.ExperienceRecord, error) {
		return p.source.FetchExperiences(ctx, p.cfg.FetchLimit)
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p.mu.Lock()
	p.snap = &snapshot{
		records:   records,
		fetchedAt: now,
		expiresAt: now.Add(p.cfg.SnapshotTTL),
	}
	p.mu.Unlock()

	p.logger.Debug().Int("records", len(records)).Msg("corpus snapshot refreshed")
	return records, nil
}

// Invalidate drops the current snapshot so the next read refetches.
// Called when ingestion commits a batch or a corpus-updated event
// arrives.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.snap = nil
	p.mu.Unlock()
	p.logger.Debug().Msg("corpus snapshot invalidated")
}

// SnapshotSize returns the record count of the current snapshot, 0 when
// none is loaded. Used by readiness checks and metrics.
func (p *Provider) SnapshotSize() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.snap == nil {
		return 0
	}
	return len(p.snap.records)
}

// BreakerState reports the circuit breaker state for health surfaces.
func (p *Provider) BreakerState() string {
	return p.breaker.State().String()
}
