// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

//go:build integration

package corpus_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/corpus"
	"github.com/akerrigan/glpcompass/internal/testinfra"
)

func seedPostgresCorpus(ctx context.Context, t *testing.T, url string) {
	t.Helper()

	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		t.Fatalf("connect for seeding: %v", err)
	}
	defer conn.Close(ctx)

	type row struct {
		drug string
		sex  string
		loss float64
		cost int
	}
	rows := []row{
		{"Ozempic", "female", 28, 450},
		{"Ozempic", "female", 31, 500},
		{"ozempic", "male", 22, 475}, // lowercase on purpose: standardized on read
		{"Zepbound", "female", 41, 550},
		{"Zepbound", "other", 38, 525},
	}

	for i, r := range rows {
		_, err := conn.Exec(ctx, `
			INSERT INTO mv_experiences_denormalized
				(id, primary_drug, beginning_weight_lbs, weight_loss_lbs,
				 weight_loss_percentage, age, sex, has_insurance,
				 comorbidities, side_effects, cost_per_month, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
			uuid.New().String(), r.drug, 220.0+float64(i), r.loss,
			r.loss/220*100, 30+i, r.sex, true,
			[]byte(`["pcos"]`), []byte(`[{"name":"nausea","severity":"mild"}]`), r.cost,
			time.Now().UTC().Add(-time.Duration(i)*time.Hour))
		if err != nil {
			t.Fatalf("seed row %d: %v", i, err)
		}
	}

	// One unusable row: no drug, should never be fetched.
	_, err = conn.Exec(ctx, fmt.Sprintf(`
		INSERT INTO mv_experiences_denormalized (id, primary_drug, created_at)
		VALUES ('%s', NULL, now())`, uuid.New().String()))
	if err != nil {
		t.Fatalf("seed unusable row: %v", err)
	}
}

func TestPostgresSourceAgainstRealDatabase(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pg, err := testinfra.NewPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, pg.Container)

	seedPostgresCorpus(ctx, t, pg.URL)

	source, err := corpus.OpenPostgres(ctx, corpus.PostgresConfig{URL: pg.URL}, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}
	defer source.Close()

	if err := source.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	records, err := source.FetchExperiences(ctx, 100)
	if err != nil {
		t.Fatalf("FetchExperiences: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("fetched %d records, want 5 usable", len(records))
	}
	for _, rec := range records {
		if rec.PrimaryDrug != "Ozempic" && rec.PrimaryDrug != "Zepbound" {
			t.Errorf("drug %q not standardized", rec.PrimaryDrug)
		}
		if rec.WeightLossLbs == nil {
			t.Error("usable record missing weight loss")
		}
		if len(rec.Comorbidities) == 0 || len(rec.SideEffects) == 0 {
			t.Error("JSONB fields did not round-trip")
		}
	}

	counts, err := source.CountByDrug(ctx)
	if err != nil {
		t.Fatalf("CountByDrug: %v", err)
	}
	got := map[string]int{}
	for _, c := range counts {
		got[c.Drug] += c.Count
	}
	// Counts come from the raw column, so the lowercase row counts under
	// its stored spelling.
	if got["Ozempic"]+got["ozempic"] != 3 || got["Zepbound"] != 2 {
		t.Errorf("drug counts = %v", got)
	}

	stats, err := source.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalExperiences != 6 {
		t.Errorf("total = %d, want 6 including the unusable row", stats.TotalExperiences)
	}
	if stats.WithWeightLoss != 5 || stats.WithCost != 5 {
		t.Errorf("coverage = %+v", stats)
	}
}

func TestPostgresSourceLimitAndOrdering(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	pg, err := testinfra.NewPostgresContainer(ctx)
	if err != nil {
		t.Fatalf("start postgres: %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, pg.Container)

	seedPostgresCorpus(ctx, t, pg.URL)

	source, err := corpus.OpenPostgres(ctx, corpus.PostgresConfig{URL: pg.URL}, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}
	defer source.Close()

	records, err := source.FetchExperiences(ctx, 2)
	if err != nil {
		t.Fatalf("FetchExperiences: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("fetched %d records, want limit 2", len(records))
	}
	// Seed rows get older as the index grows, so newest-first means the
	// first two seeded rows come back.
	if !records[0].CreatedAt.After(records[1].CreatedAt) {
		t.Errorf("records not newest first: %v then %v", records[0].CreatedAt, records[1].CreatedAt)
	}
}
