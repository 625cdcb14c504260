// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package corpus

import (
	"context"
	"errors"

	"github.com/akerrigan/glpcompass/internal/models"
)

// DefaultFetchLimit bounds one corpus fetch when the caller passes no
// limit. Matches the read contract of the extraction pipeline's
// denormalized view.
const DefaultFetchLimit = 1000

// Corpus-level errors.
var (
	// ErrStoreClosed is returned by operations on a closed source.
	ErrStoreClosed = errors.New("corpus store is closed")

	// ErrNoRows signals an empty fetch where the caller required data.
	ErrNoRows = errors.New("no experience records available")
)

// Source is a read/write view onto the experience corpus. Store (DuckDB)
// and PostgresSource implement it; Provider consumes it.
type Source interface {
	// FetchExperiences returns up to limit usable records, newest first.
	// Usable means a non-empty primary drug and a reported weight loss;
	// rows without either carry no outcome signal for matching. A
	// limit <= 0 means DefaultFetchLimit.
	FetchExperiences(ctx context.Context, limit int) ([]models.ExperienceRecord, error)

	// CountByDrug returns per-drug record counts over the whole corpus.
	CountByDrug(ctx context.Context) ([]models.DrugCount, error)

	// Stats returns corpus-level statistics for the stats surface.
	Stats(ctx context.Context) (*models.CorpusStats, error)

	// Ping verifies the source is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connection(s).
	Close() error
}

// Writer is the ingestion-side extension of Source. The Postgres source
// is read-only; only the embedded store implements Writer.
type Writer interface {
	// InsertExperiences stores a batch, standardizing drug names on the
	// way in, and returns the number of rows written.
	InsertExperiences(ctx context.Context, records []models.ExperienceRecord) (int, error)
}
