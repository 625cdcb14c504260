// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/ingest"
	"github.com/akerrigan/glpcompass/internal/metrics"
)

// Journal is the slice of ingest.Journal this service needs: periodic
// compaction of confirmed entries and the counters for the pending
// gauge.
type Journal interface {
	CompactConfirmed(ctx context.Context) (int, error)
	Stats() ingest.JournalStats
}

// JournalMaintenanceService periodically compacts confirmed journal
// entries past their retention window and refreshes the pending-entries
// gauge. Compaction failures are logged and retried on the next tick;
// the supervisor only sees an error if the service itself dies.
type JournalMaintenanceService struct {
	journal  Journal
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewJournalMaintenanceService creates the maintenance loop. A
// non-positive interval falls back to one hour.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewJournalMaintenanceService(journal Journal, interval time.Duration, logger zerolog.Logger) *JournalMaintenanceService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &JournalMaintenanceService{
		journal:  journal,
		interval: interval,
		logger:   logger.With().Str("component", "journal-maintenance").Logger(),
		name:     "journal-maintenance",
	}
}

// Serve implements suture.Service. Runs one maintenance pass
// immediately so a restart after a long outage compacts promptly, then
// ticks at the configured interval until the context is canceled.
func (s *JournalMaintenanceService) Serve(ctx context.Context) error {
	s.maintain(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.maintain(ctx)
		}
	}
}

func (s *JournalMaintenanceService) maintain(ctx context.Context) {
	removed, err := s.journal.CompactConfirmed(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("journal compaction failed")
	} else if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("journal compacted")
	}

	metrics.JournalPendingEntries.Set(float64(s.journal.Stats().PendingCount))
}

// String implements fmt.Stringer for supervisor logs.
func (s *JournalMaintenanceService) String() string {
	return s.name
}
