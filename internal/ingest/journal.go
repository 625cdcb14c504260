// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/models"
)

// Journal errors.
var (
	ErrJournalClosed = errors.New("journal is closed")
	ErrEmptyBatch    = errors.New("batch cannot be empty")
	ErrEntryNotFound = errors.New("journal entry not found")
)

// Key prefixes separating entry states.
const (
	prefixPending   = "pending:"
	prefixConfirmed = "confirmed:"
)

// JournalConfig configures the durable ingest journal.
type JournalConfig struct {
	// Path is the BadgerDB directory.
	Path string `koanf:"path"`

	// SyncWrites forces fsync on every append. Slower, crash-safe.
	SyncWrites bool `koanf:"sync_writes"`

	// RetainConfirmed is how long confirmed entries are kept before
	// compaction removes them. They exist only for auditing a recent
	// ingest.
	RetainConfirmed time.Duration `koanf:"retain_confirmed"`

	// CompactionInterval is how often the compaction loop runs.
	CompactionInterval time.Duration `koanf:"compaction_interval"`
}

// DefaultJournalConfig returns the production defaults.
func DefaultJournalConfig() JournalConfig {
	return JournalConfig{
		Path:               "data/journal",
		SyncWrites:         true,
		RetainConfirmed:    24 * time.Hour,
		CompactionInterval: time.Hour,
	}
}

// JournalEntry is one journaled batch with its delivery state.
type JournalEntry struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
	Attempts  int             `json:"attempts"`
	LastError string          `json:"last_error,omitempty"`
	Confirmed bool            `json:"confirmed"`
}

// Records deserializes the journaled batch.
func (e *JournalEntry) Records() ([]models.ExperienceRecord, error) {
	var records []models.ExperienceRecord
	if err := json.Unmarshal(e.Payload, &records); err != nil {
		return nil, fmt.Errorf("unmarshal journal payload: %w", err)
	}
	return records, nil
}

// JournalStats reports journal state for health and metrics surfaces.
type JournalStats struct {
	PendingCount   int64
	ConfirmedCount int64
	TotalAppends   int64
	TotalConfirms  int64
	DBSizeBytes    int64
}

// Journal persists accepted ingest batches to BadgerDB before the store
// write and confirms them after, so a crash between the two leaves a
// replayable pending entry rather than a lost batch.
type Journal struct {
	db     *badger.DB
	cfg    JournalConfig
	logger zerolog.Logger

	totalAppends  atomic.Int64
	totalConfirms atomic.Int64

	mu     sync.RWMutex
	closed bool
}

// OpenJournal opens (or creates) the journal at the configured path.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func OpenJournal(cfg JournalConfig, logger zerolog.Logger) (*Journal, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("journal: path is required")
	}

	opts := badger.DefaultOptions(cfg.Path)
	opts.SyncWrites = cfg.SyncWrites
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	j := &Journal{
		db:     db,
		cfg:    cfg,
		logger: logger.With().Str("component", "ingest_journal").Logger(),
	}
	j.logger.Info().Str("path", cfg.Path).Bool("sync_writes", cfg.SyncWrites).Msg("ingest journal opened")
	return j, nil
}

// Append journals a batch as pending and returns the entry ID.
func (j *Journal) Append(ctx context.Context, batch []models.ExperienceRecord) (string, error) {
	if err := j.checkOpen(); err != nil {
		return "", err
	}
	if len(batch) == 0 {
		return "", ErrEmptyBatch
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		return "", fmt.Errorf("marshal batch: %w", err)
	}

	entry := &JournalEntry{
		ID:        uuid.New().String(),
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("marshal journal entry: %w", err)
	}

	key := []byte(prefixPending + entry.ID)
	if err := j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	}); err != nil {
		return "", fmt.Errorf("append journal entry: %w", err)
	}

	j.totalAppends.Add(1)
	return entry.ID, nil
}

// Confirm moves an entry from pending to confirmed after the store
// committed the batch.
func (j *Journal) Confirm(ctx context.Context, entryID string) error {
	if err := j.checkOpen(); err != nil {
		return err
	}

	pendingKey := []byte(prefixPending + entryID)
	confirmedKey := []byte(prefixConfirmed + entryID)

	err := j.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(pendingKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrEntryNotFound
		}
		if err != nil {
			return fmt.Errorf("get pending entry: %w", err)
		}

		var entry JournalEntry
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		}); err != nil {
			return fmt.Errorf("unmarshal entry: %w", err)
		}

		entry.Confirmed = true
		data, err := json.Marshal(&entry)
		if err != nil {
			return fmt.Errorf("marshal confirmed entry: %w", err)
		}

		e := badger.NewEntry(confirmedKey, data)
		if j.cfg.RetainConfirmed > 0 {
			e = e.WithTTL(j.cfg.RetainConfirmed)
		}
		if err := txn.SetEntry(e); err != nil {
			return fmt.Errorf("set confirmed entry: %w", err)
		}
		return txn.Delete(pendingKey)
	})
	if err != nil {
		return err
	}

	j.totalConfirms.Add(1)
	return nil
}

// MarkAttempt records a failed store write on a pending entry.
func (j *Journal) MarkAttempt(ctx context.Context, entryID string, cause error) error {
	if err := j.checkOpen(); err != nil {
		return err
	}

	key := []byte(prefixPending + entryID)
	return j.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrEntryNotFound
		}
		if err != nil {
			return fmt.Errorf("get pending entry: %w", err)
		}

		var entry JournalEntry
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		}); err != nil {
			return fmt.Errorf("unmarshal entry: %w", err)
		}

		entry.Attempts++
		if cause != nil {
			entry.LastError = cause.Error()
		}

		data, err := json.Marshal(&entry)
		if err != nil {
			return fmt.Errorf("marshal entry: %w", err)
		}
		return txn.Set(key, data)
	})
}

// Pending returns unconfirmed entries for replay, oldest first by key
// iteration order. Malformed entries are logged and skipped.
func (j *Journal) Pending(ctx context.Context) ([]*JournalEntry, error) {
	if err := j.checkOpen(); err != nil {
		return nil, err
	}

	var entries []*JournalEntry
	err := j.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(prefixPending)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			item := it.Item()
			var entry JournalEntry
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				j.logger.Warn().Err(err).Str("key", string(item.Key())).Msg("journal entry unmarshal failed, skipped")
				continue
			}
			entries = append(entries, &entry)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate pending entries: %w", err)
	}
	return entries, nil
}

// CompactConfirmed deletes confirmed entries older than RetainConfirmed.
// Badger TTLs already expire them lazily; compaction reclaims them
// eagerly and returns the count removed.
func (j *Journal) CompactConfirmed(ctx context.Context) (int, error) {
	if err := j.checkOpen(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-j.cfg.RetainConfirmed)
	var expired [][]byte

	err := j.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(prefixConfirmed)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			item := it.Item()
			var entry JournalEntry
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &entry)
			}); err != nil {
				continue
			}
			if entry.CreatedAt.Before(cutoff) {
				key := make([]byte, len(item.Key()))
				copy(key, item.Key())
				expired = append(expired, key)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan confirmed entries: %w", err)
	}

	removed := 0
	for _, key := range expired {
		if err := j.db.Update(func(txn *badger.Txn) error {
			return txn.Delete(key)
		}); err != nil {
			return removed, fmt.Errorf("delete confirmed entry: %w", err)
		}
		removed++
	}
	return removed, nil
}

// Stats counts entries by state.
func (j *Journal) Stats() JournalStats {
	j.mu.RLock()
	closed := j.closed
	j.mu.RUnlock()
	if closed {
		return JournalStats{}
	}

	var pending, confirmed int64
	if err := j.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		pendingPrefix := []byte(prefixPending)
		for it.Seek(pendingPrefix); it.ValidForPrefix(pendingPrefix); it.Next() {
			pending++
		}
		confirmedPrefix := []byte(prefixConfirmed)
		for it.Seek(confirmedPrefix); it.ValidForPrefix(confirmedPrefix); it.Next() {
			confirmed++
		}
		return nil
	}); err != nil {
		j.logger.Warn().Err(err).Msg("journal stats count failed")
	}

	lsm, vlog := j.db.Size()
	return JournalStats{
		PendingCount:   pending,
		ConfirmedCount: confirmed,
		TotalAppends:   j.totalAppends.Load(),
		TotalConfirms:  j.totalConfirms.Load(),
		DBSizeBytes:    lsm + vlog,
	}
}

// Close shuts the journal down. Safe to call twice.
func (j *Journal) Close() error {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return nil
	}
	j.closed = true
	j.mu.Unlock()

	if err := j.db.Close(); err != nil {
		return fmt.Errorf("close journal: %w", err)
	}
	j.logger.Info().Msg("ingest journal closed")
	return nil
}

func (j *Journal) checkOpen() error {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.closed {
		return ErrJournalClosed
	}
	return nil
}
