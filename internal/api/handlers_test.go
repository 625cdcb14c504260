// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package api

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/cache"
	"github.com/akerrigan/glpcompass/internal/corpus"
	"github.com/akerrigan/glpcompass/internal/models"
	"github.com/akerrigan/glpcompass/internal/recommend"
)

func fptr(v float64) *float64 { return &v }

// mockSource is an in-memory corpus.Source for handler tests.
type mockSource struct {
	records  []models.ExperienceRecord
	counts   []models.DrugCount
	stats    *models.CorpusStats
	fetchErr error
	countErr error
	statsErr error
	pingErr  error

	statsCalls int
}

var _ corpus.Source = (*mockSource)(nil)

func (m *mockSource) FetchExperiences(_ context.Context, _ int) ([]models.ExperienceRecord, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.records, nil
}

func (m *mockSource) CountByDrug(_ context.Context) ([]models.DrugCount, error) {
	if m.countErr != nil {
		return nil, m.countErr
	}
	return m.counts, nil
}

func (m *mockSource) Stats(_ context.Context) (*models.CorpusStats, error) {
	m.statsCalls++
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	return m.stats, nil
}

func (m *mockSource) Ping(_ context.Context) error { return m.pingErr }

func (m *mockSource) Close() error { return nil }

// testCorpus builds n usable records for one drug, enough alike that a
// mid-thirties female profile matches them.
func testCorpus(drug string, n int) []models.ExperienceRecord {
	records := make([]models.ExperienceRecord, 0, n)
	for i := 0; i < n; i++ {
		age := 30 + i%10
		records = append(records, models.ExperienceRecord{
			ID:                   uuid.New(),
			PrimaryDrug:          drug,
			BeginningWeightLbs:   fptr(215 + float64(i)),
			WeightLossLbs:        fptr(26 + float64(i%5)),
			WeightLossPercentage: fptr(12.0),
			Age:                  &age,
			Sex:                  models.SexFemale,
			CostPerMonth:         fptr(450),
			SideEffects: []models.SideEffect{
				{Name: "nausea", Severity: models.SeverityMild},
			},
			CreatedAt: time.Now(),
		})
	}
	return records
}

// newTestHandler wires a Handler over the mock source with a real
// provider, engine, and response cache.
func newTestHandler(t *testing.T, src corpus.Source) *Handler {
	t.Helper()

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	provider := corpus.NewProvider(src, corpus.DefaultProviderConfig(), zerolog.Nop())
	return NewHandler(src, provider, engine, cache.New(time.Minute), time.Minute, "test", zerolog.Nop())
}

// envelope mirrors models.APIResponse for decoding in assertions.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, body)
	}
	return env
}
