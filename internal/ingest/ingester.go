// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package ingest

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/corpus"
)

// Notifier is told when a batch commits to the store. Implementations
// publish the corpus-updated event and drop cached snapshots. A failed
// notification never fails the ingest; the data is already committed.
type Notifier interface {
	CorpusUpdated(ctx context.Context, inserted int) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, inserted int) error

func (f NotifierFunc) CorpusUpdated(ctx context.Context, inserted int) error {
	return f(ctx, inserted)
}

// Ingester loads export files into the corpus store, optionally
// journaling each batch for crash recovery and notifying listeners
// after commit. Journal and notifier may both be nil.
type Ingester struct {
	store   corpus.Writer
	journal *Journal
	notify  Notifier
	logger  zerolog.Logger
}

// NewIngester wires an ingester. journal and notify may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewIngester(store corpus.Writer, journal *Journal, notify Notifier, logger zerolog.Logger) *Ingester {
	return &Ingester{
		store:   store,
		journal: journal,
		notify:  notify,
		logger:  logger.With().Str("component", "ingester").Logger(),
	}
}

// IngestFile loads one export file.
func (i *Ingester) IngestFile(ctx context.Context, path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()
	return i.Ingest(ctx, f)
}

// Ingest parses, validates, journals, and stores one export stream.
// Invalid documents are skipped per the loader contract; an empty or
// fully-invalid export returns its report with no error.
func (i *Ingester) Ingest(ctx context.Context, r io.Reader) (*Report, error) {
	records, report, err := LoadRecords(r, i.logger)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		i.logger.Info().Int("total", report.Total).Int("invalid", report.Invalid).
			Msg("export contained no valid documents")
		return report, nil
	}

	var entryID string
	if i.journal != nil {
		entryID, err = i.journal.Append(ctx, records)
		if err != nil {
			return nil, fmt.Errorf("journal batch: %w", err)
		}
	}

	inserted, err := i.store.InsertExperiences(ctx, records)
	if err != nil {
		if entryID != "" {
			if markErr := i.journal.MarkAttempt(ctx, entryID, err); markErr != nil {
				i.logger.Error().Err(markErr).Str("entry_id", entryID).Msg("journal attempt update failed")
			}
		}
		return nil, fmt.Errorf("store batch: %w", err)
	}
	report.Inserted = inserted

	if entryID != "" {
		if err := i.journal.Confirm(ctx, entryID); err != nil {
			// The batch is committed; a confirm failure only means the
			// entry replays later, and replay is idempotent enough for
			// an append-only corpus to tolerate.
			i.logger.Error().Err(err).Str("entry_id", entryID).Msg("journal confirm failed")
		}
	}

	i.notifyCommitted(ctx, inserted)
	i.logger.Info().
		Int("total", report.Total).
		Int("valid", report.Valid).
		Int("invalid", report.Invalid).
		Int("inserted", inserted).
		Msg("export batch ingested")
	return report, nil
}

// Replay re-drives pending journal entries into the store. Called once
// on startup before the service accepts traffic. Returns the number of
// records recovered.
func (i *Ingester) Replay(ctx context.Context) (int, error) {
	if i.journal == nil {
		return 0, nil
	}

	entries, err := i.journal.Pending(ctx)
	if err != nil {
		return 0, fmt.Errorf("read pending entries: %w", err)
	}
	if len(entries) == 0 {
		return 0, nil
	}

	recovered := 0
	for _, entry := range entries {
		records, err := entry.Records()
		if err != nil {
			i.logger.Error().Err(err).Str("entry_id", entry.ID).Msg("unreadable journal entry skipped")
			continue
		}

		inserted, err := i.store.InsertExperiences(ctx, records)
		if err != nil {
			if markErr := i.journal.MarkAttempt(ctx, entry.ID, err); markErr != nil {
				i.logger.Error().Err(markErr).Str("entry_id", entry.ID).Msg("journal attempt update failed")
			}
			return recovered, fmt.Errorf("replay entry %s: %w", entry.ID, err)
		}

		if err := i.journal.Confirm(ctx, entry.ID); err != nil {
			i.logger.Error().Err(err).Str("entry_id", entry.ID).Msg("journal confirm failed during replay")
		}
		recovered += inserted
		i.logger.Info().Str("entry_id", entry.ID).Int("inserted", inserted).Msg("journal entry replayed")
	}

	if recovered > 0 {
		i.notifyCommitted(ctx, recovered)
	}
	return recovered, nil
}

func (i *Ingester) notifyCommitted(ctx context.Context, inserted int) {
	if i.notify == nil {
		return
	}
	if err := i.notify.CorpusUpdated(ctx, inserted); err != nil {
		i.logger.Warn().Err(err).Msg("corpus-updated notification failed")
	}
}
