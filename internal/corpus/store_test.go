// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package corpus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := StoreConfig{Path: ":memory:", MaxMemory: "256MB"}
	s, err := OpenStore(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func storeRecord(drug string, lossLbs float64) models.ExperienceRecord {
	return models.ExperienceRecord{
		PrimaryDrug:          drug,
		BeginningWeightLbs:   fptr(230),
		WeightLossLbs:        &lossLbs,
		WeightLossPercentage: fptr(12.5),
		Age:                  iptr(40),
		Sex:                  models.SexFemale,
		HasInsurance:         bptr(true),
		Comorbidities:        []string{"pcos"},
		SideEffects:          []models.SideEffect{{Name: "Nausea", Severity: models.SeverityMild}},
		CostPerMonth:         fptr(120),
	}
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }

func TestStoreInsertAndFetch(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.InsertExperiences(ctx, []models.ExperienceRecord{
		storeRecord("ozempic", 30),
		storeRecord("Wegovy", 25),
	})
	if err != nil {
		t.Fatalf("InsertExperiences() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("inserted = %d, want 2", n)
	}

	records, err := s.FetchExperiences(ctx, 0)
	if err != nil {
		t.Fatalf("FetchExperiences() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Drug names standardized at insert.
	drugs := map[string]bool{}
	for _, r := range records {
		drugs[r.PrimaryDrug] = true
	}
	if !drugs["Ozempic"] || !drugs["Wegovy"] {
		t.Errorf("drugs = %v, want standardized Ozempic and Wegovy", drugs)
	}

	rec := records[0]
	if rec.WeightLossLbs == nil {
		t.Fatal("WeightLossLbs not round-tripped")
	}
	if len(rec.Comorbidities) != 1 || rec.Comorbidities[0] != "pcos" {
		t.Errorf("Comorbidities = %v, want [pcos]", rec.Comorbidities)
	}
	if len(rec.SideEffects) != 1 || rec.SideEffects[0].Name != "Nausea" {
		t.Errorf("SideEffects = %v, want Nausea", rec.SideEffects)
	}
	if rec.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("ID not assigned at insert")
	}
}

func TestStoreSkipsUnusableRecords(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.InsertExperiences(ctx, []models.ExperienceRecord{
		{PrimaryDrug: "   "}, // no drug, skipped
		storeRecord("Ozempic", 20),
	})
	if err != nil {
		t.Fatalf("InsertExperiences() error = %v", err)
	}
	if n != 1 {
		t.Errorf("inserted = %d, want 1 (blank drug skipped)", n)
	}
}

func TestStoreFetchExcludesRowsWithoutWeightLoss(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	noLoss := storeRecord("Ozempic", 0)
	noLoss.WeightLossLbs = nil
	if _, err := s.InsertExperiences(ctx, []models.ExperienceRecord{
		noLoss,
		storeRecord("Ozempic", 18),
	}); err != nil {
		t.Fatal(err)
	}

	records, err := s.FetchExperiences(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1 (row without weight loss excluded)", len(records))
	}
}

func TestStoreFetchNewestFirstAndLimited(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	old := storeRecord("Ozempic", 10)
	old.CreatedAt = time.Now().Add(-24 * time.Hour)
	recent := storeRecord("Ozempic", 20)
	recent.CreatedAt = time.Now()

	if _, err := s.InsertExperiences(ctx, []models.ExperienceRecord{old, recent}); err != nil {
		t.Fatal(err)
	}

	records, err := s.FetchExperiences(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if *records[0].WeightLossLbs != 20 {
		t.Errorf("newest record loss = %v, want 20", *records[0].WeightLossLbs)
	}
}

func TestStoreCountByDrug(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	batch := []models.ExperienceRecord{
		storeRecord("Ozempic", 10),
		storeRecord("Ozempic", 12),
		storeRecord("Ozempic", 14),
		storeRecord("Wegovy", 20),
	}
	if _, err := s.InsertExperiences(ctx, batch); err != nil {
		t.Fatal(err)
	}

	counts, err := s.CountByDrug(ctx)
	if err != nil {
		t.Fatalf("CountByDrug() error = %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("got %d drugs, want 2", len(counts))
	}
	if counts[0].Drug != "Ozempic" || counts[0].Count != 3 {
		t.Errorf("top drug = %+v, want Ozempic x3", counts[0])
	}
}

func TestStoreStats(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	noCost := storeRecord("Wegovy", 15)
	noCost.CostPerMonth = nil
	noCost.SideEffects = nil
	if _, err := s.InsertExperiences(ctx, []models.ExperienceRecord{
		storeRecord("Ozempic", 30),
		noCost,
	}); err != nil {
		t.Fatal(err)
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalExperiences != 2 || stats.DistinctDrugs != 2 {
		t.Errorf("totals = %d/%d, want 2/2", stats.TotalExperiences, stats.DistinctDrugs)
	}
	if stats.WithWeightLoss != 2 {
		t.Errorf("WithWeightLoss = %d, want 2", stats.WithWeightLoss)
	}
	if stats.WithCost != 1 {
		t.Errorf("WithCost = %d, want 1", stats.WithCost)
	}
	if stats.WithSideEffects != 1 {
		t.Errorf("WithSideEffects = %d, want 1", stats.WithSideEffects)
	}
}

func TestStoreClosed(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	ctx := context.Background()
	if _, err := s.FetchExperiences(ctx, 0); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("FetchExperiences() error = %v, want ErrStoreClosed", err)
	}
	if _, err := s.InsertExperiences(ctx, nil); !errors.Is(err, ErrStoreClosed) {
		t.Errorf("InsertExperiences() error = %v, want ErrStoreClosed", err)
	}
	// Double close is a no-op.
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
