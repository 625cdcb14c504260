// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import (
	"testing"

	"github.com/akerrigan/glpcompass/internal/models"
)

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	mk := func(vals ...float64) Vector {
		var v Vector
		copy(v[:], vals)
		return v
	}

	tests := []struct {
		name string
		a, b Vector
		want float64
	}{
		{"identical vectors", mk(1, 2, 3), mk(1, 2, 3), 1.0},
		{"orthogonal vectors", mk(1, 0), mk(0, 1), 0.0},
		{"opposed vectors clamp to zero", mk(1, 1), mk(-1, -1), 0.0},
		{"zero left vector", mk(), mk(1, 2), 0.0},
		{"zero right vector", mk(1, 2), mk(), 0.0},
		{"both zero", mk(), mk(), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CosineSimilarity(tt.a, tt.b); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityBounds(t *testing.T) {
	t.Parallel()

	user := UserVector(testProfile())
	records := []models.ExperienceRecord{
		testRecord("Ozempic"),
		{PrimaryDrug: "Ozempic"},
		{PrimaryDrug: "Ozempic", Age: iptr(90), BeginningWeightLbs: fptr(400)},
	}
	for i := range records {
		sim := CosineSimilarity(user, ExperienceVector(&records[i]))
		if sim < 0 || sim > 1+1e-9 {
			t.Errorf("record %d: similarity %v out of [0, 1]", i, sim)
		}
	}
}

func TestFindNeighborsFiltersByDrug(t *testing.T) {
	t.Parallel()

	corpus := append(testCorpus("Ozempic", 3), testCorpus("Wegovy", 4)...)
	neighbors := FindNeighbors(UserVector(testProfile()), corpus, "Wegovy", 15)

	if len(neighbors) != 4 {
		t.Fatalf("got %d neighbors, want 4", len(neighbors))
	}
	for _, n := range neighbors {
		if n.Record.PrimaryDrug != "Wegovy" {
			t.Errorf("neighbor drug = %q, want Wegovy", n.Record.PrimaryDrug)
		}
	}
}

func TestFindNeighborsNoMatches(t *testing.T) {
	t.Parallel()

	if n := FindNeighbors(UserVector(testProfile()), testCorpus("Ozempic", 5), "Zepbound", 15); n != nil {
		t.Errorf("got %d neighbors for absent drug, want none", len(n))
	}
	if n := FindNeighbors(UserVector(testProfile()), nil, "Ozempic", 15); n != nil {
		t.Errorf("got %d neighbors from empty corpus, want none", len(n))
	}
}

func TestFindNeighborsTopK(t *testing.T) {
	t.Parallel()

	corpus := testCorpus("Ozempic", 40)
	neighbors := FindNeighbors(UserVector(testProfile()), corpus, "Ozempic", 15)
	if len(neighbors) != 15 {
		t.Fatalf("got %d neighbors, want 15", len(neighbors))
	}

	for i := 1; i < len(neighbors); i++ {
		if neighbors[i].Similarity > neighbors[i-1].Similarity {
			t.Errorf("neighbors not in descending similarity at %d", i)
		}
	}
}

func TestFindNeighborsTieOrderIsCorpusOrder(t *testing.T) {
	t.Parallel()

	// Identical records score identically; selection must keep the
	// earliest rows.
	corpus := testCorpus("Ozempic", 20)
	neighbors := FindNeighbors(UserVector(testProfile()), corpus, "Ozempic", 5)

	if len(neighbors) != 5 {
		t.Fatalf("got %d neighbors, want 5", len(neighbors))
	}
	for i, n := range neighbors {
		if n.Index != i {
			t.Errorf("neighbor %d has corpus index %d, want %d", i, n.Index, i)
		}
	}
}

func TestFindNeighborsPrefersSimilar(t *testing.T) {
	t.Parallel()

	corpus := testCorpus("Ozempic", 10)
	// A very different profile appended last.
	outlier := models.ExperienceRecord{
		PrimaryDrug:        "Ozempic",
		Age:                iptr(78),
		BeginningWeightLbs: fptr(450),
		Sex:                models.SexMale,
	}
	corpus = append(corpus, outlier)

	neighbors := FindNeighbors(UserVector(testProfile()), corpus, "Ozempic", 10)
	for _, n := range neighbors {
		if n.Index == 10 {
			t.Error("outlier selected over closer records")
		}
	}
}

func TestFindNeighborsZeroSignalRecord(t *testing.T) {
	t.Parallel()

	// A record whose vector is all zero must score 0, not panic.
	corpus := []models.ExperienceRecord{{PrimaryDrug: "Ozempic", Age: iptr(0)}}
	neighbors := FindNeighbors(UserVector(testProfile()), corpus, "Ozempic", 5)

	if len(neighbors) != 1 {
		t.Fatalf("got %d neighbors, want 1", len(neighbors))
	}
	if neighbors[0].Similarity != 0 {
		t.Errorf("zero-vector similarity = %v, want 0", neighbors[0].Similarity)
	}
}
