// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // duckdb database/sql driver
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/models"
)

// StoreConfig configures the embedded DuckDB store.
type StoreConfig struct {
	// Path is the database file. ":memory:" gives an ephemeral store.
	Path string `koanf:"path"`

	// Threads caps DuckDB's internal parallelism. <= 0 means NumCPU.
	Threads int `koanf:"threads"`

	// MaxMemory is DuckDB's memory budget, e.g. "512MB".
	MaxMemory string `koanf:"max_memory"`
}

// DefaultStoreConfig returns the production defaults.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Path:      "data/glpcompass.db",
		MaxMemory: "512MB",
	}
}

// Store is the embedded DuckDB corpus store. Safe for concurrent use;
// database/sql pools connections underneath.
type Store struct {
	conn   *sql.DB
	logger zerolog.Logger
	closed bool
}

var (
	_ Source = (*Store)(nil)
	_ Writer = (*Store)(nil)
)

// schema is created on open. Side effects and comorbidities are stored
// as JSON text; DuckDB handles them opaquely and the Go layer owns the
// (de)serialization.
const schema = `
CREATE TABLE IF NOT EXISTS experiences (
    id                     VARCHAR PRIMARY KEY,
    primary_drug           VARCHAR NOT NULL,
    beginning_weight_lbs   DOUBLE,
    weight_loss_lbs        DOUBLE,
    weight_loss_percentage DOUBLE,
    age                    INTEGER,
    sex                    VARCHAR,
    has_insurance          BOOLEAN,
    comorbidities          VARCHAR,
    side_effects           VARCHAR,
    cost_per_month         DOUBLE,
    created_at             TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_experiences_drug ON experiences(primary_drug);
`

// OpenStore opens (or creates) the store at cfg.Path and ensures the
// schema exists.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func OpenStore(cfg StoreConfig, logger zerolog.Logger) (*Store, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "512MB"
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s",
		cfg.Path, threads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{
		conn:   conn,
		logger: logger.With().Str("component", "corpus_store").Logger(),
	}
	s.logger.Info().Str("path", cfg.Path).Msg("corpus store opened")
	return s, nil
}

// InsertExperiences writes a batch inside one transaction. Drug names
// are standardized on the way in; records without a usable drug name are
// skipped and not counted. Missing IDs and timestamps are assigned.
func (s *Store) InsertExperiences(ctx context.Context, records []models.ExperienceRecord) (int, error) {
	if s.closed {
		return 0, ErrStoreClosed
	}
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO experiences (
			id, primary_drug, beginning_weight_lbs, weight_loss_lbs,
			weight_loss_percentage, age, sex, has_insurance,
			comorbidities, side_effects, cost_per_month, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for i := range records {
		rec := records[i]

		drug := StandardizeDrugName(rec.PrimaryDrug)
		if drug == "" {
			continue
		}
		if rec.ID == uuid.Nil {
			rec.ID = uuid.New()
		}
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now().UTC()
		}

		comorbidities, err := marshalOrNil(rec.Comorbidities, len(rec.Comorbidities) > 0)
		if err != nil {
			return inserted, fmt.Errorf("marshal comorbidities: %w", err)
		}
		sideEffects, err := marshalOrNil(rec.SideEffects, len(rec.SideEffects) > 0)
		if err != nil {
			return inserted, fmt.Errorf("marshal side effects: %w", err)
		}

		if _, err := stmt.ExecContext(ctx,
			rec.ID.String(), drug,
			nullableFloat(rec.BeginningWeightLbs), nullableFloat(rec.WeightLossLbs),
			nullableFloat(rec.WeightLossPercentage), nullableInt(rec.Age),
			nullableString(string(rec.Sex)), nullableBool(rec.HasInsurance),
			comorbidities, sideEffects,
			nullableFloat(rec.CostPerMonth), rec.CreatedAt,
		); err != nil {
			return inserted, fmt.Errorf("insert record %s: %w", rec.ID, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert: %w", err)
	}

	s.logger.Debug().Int("inserted", inserted).Int("batch", len(records)).Msg("experiences inserted")
	return inserted, nil
}

// FetchExperiences returns usable records, newest first. Rows with an
// unparsable JSON column are returned with that field empty rather than
// failing the fetch; the recommendation engine tolerates missing fields.
func (s *Store) FetchExperiences(ctx context.Context, limit int) ([]models.ExperienceRecord, error) {
	if s.closed {
		return nil, ErrStoreClosed
	}
	if limit <= 0 {
		limit = DefaultFetchLimit
	}

	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, primary_drug, beginning_weight_lbs, weight_loss_lbs,
		       weight_loss_percentage, age, sex, has_insurance,
		       comorbidities, side_effects, cost_per_month, created_at
		FROM experiences
		WHERE primary_drug <> '' AND weight_loss_lbs IS NOT NULL
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch experiences: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]models.ExperienceRecord, 0, limit)
	for rows.Next() {
		rec, err := s.scanExperience(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate experiences: %w", err)
	}
	return records, nil
}

// scanExperience maps one row onto an ExperienceRecord.
func (s *Store) scanExperience(rows *sql.Rows) (models.ExperienceRecord, error) {
	var (
		rec           models.ExperienceRecord
		id, sex       sql.NullString
		beginning     sql.NullFloat64
		loss          sql.NullFloat64
		lossPct       sql.NullFloat64
		age           sql.NullInt64
		insured       sql.NullBool
		comorbidities sql.NullString
		sideEffects   sql.NullString
		cost          sql.NullFloat64
	)

	if err := rows.Scan(&id, &rec.PrimaryDrug, &beginning, &loss, &lossPct,
		&age, &sex, &insured, &comorbidities, &sideEffects, &cost, &rec.CreatedAt); err != nil {
		return rec, fmt.Errorf("scan experience: %w", err)
	}

	if id.Valid {
		if parsed, err := uuid.Parse(id.String); err == nil {
			rec.ID = parsed
		}
	}
	if beginning.Valid {
		rec.BeginningWeightLbs = &beginning.Float64
	}
	if loss.Valid {
		rec.WeightLossLbs = &loss.Float64
	}
	if lossPct.Valid {
		rec.WeightLossPercentage = &lossPct.Float64
	}
	if age.Valid {
		v := int(age.Int64)
		rec.Age = &v
	}
	if sex.Valid {
		rec.Sex = models.Sex(sex.String)
	}
	if insured.Valid {
		rec.HasInsurance = &insured.Bool
	}
	if comorbidities.Valid && comorbidities.String != "" {
		if err := json.Unmarshal([]byte(comorbidities.String), &rec.Comorbidities); err != nil {
			s.logger.Warn().Str("id", id.String).Err(err).Msg("bad comorbidities JSON, field dropped")
		}
	}
	if sideEffects.Valid && sideEffects.String != "" {
		if err := json.Unmarshal([]byte(sideEffects.String), &rec.SideEffects); err != nil {
			s.logger.Warn().Str("id", id.String).Err(err).Msg("bad side effects JSON, field dropped")
		}
	}
	if cost.Valid {
		rec.CostPerMonth = &cost.Float64
	}
	return rec, nil
}

// CountByDrug returns per-drug record counts, largest first.
func (s *Store) CountByDrug(ctx context.Context) ([]models.DrugCount, error) {
	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.conn.QueryContext(ctx, `
		SELECT primary_drug, COUNT(*) AS n
		FROM experiences
		GROUP BY primary_drug
		ORDER BY n DESC, primary_drug ASC`)
	if err != nil {
		return nil, fmt.Errorf("count by drug: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make([]models.DrugCount, 0, 16)
	for rows.Next() {
		var dc models.DrugCount
		if err := rows.Scan(&dc.Drug, &dc.Count); err != nil {
			return nil, fmt.Errorf("scan drug count: %w", err)
		}
		counts = append(counts, dc)
	}
	return counts, rows.Err()
}

// Stats returns corpus totals and per-signal coverage counters.
func (s *Store) Stats(ctx context.Context) (*models.CorpusStats, error) {
	if s.closed {
		return nil, ErrStoreClosed
	}

	stats := &models.CorpusStats{GeneratedAt: time.Now().UTC()}

	row := s.conn.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(DISTINCT primary_drug),
		       COUNT(weight_loss_lbs),
		       COUNT(side_effects),
		       COUNT(cost_per_month)
		FROM experiences`)
	if err := row.Scan(&stats.TotalExperiences, &stats.DistinctDrugs,
		&stats.WithWeightLoss, &stats.WithSideEffects, &stats.WithCost); err != nil {
		return nil, fmt.Errorf("corpus stats: %w", err)
	}

	counts, err := s.CountByDrug(ctx)
	if err != nil {
		return nil, err
	}
	stats.Drugs = counts
	return stats, nil
}

// Ping verifies the store connection.
func (s *Store) Ping(ctx context.Context) error {
	if s.closed {
		return ErrStoreClosed
	}
	return s.conn.PingContext(ctx)
}

// Close closes the store. Further operations return ErrStoreClosed.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.conn.Close()
}

func marshalOrNil(v interface{}, present bool) (interface{}, error) {
	if !present {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableBool(v *bool) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}
