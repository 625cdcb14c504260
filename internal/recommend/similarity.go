// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package recommend

import (
	"math"
	"sort"

	"github.com/akerrigan/glpcompass/internal/models"
)

// Neighbor is one experience record selected as similar to the
// requesting user, with its similarity score attached. Index is the
// record's position in the corpus as passed to FindNeighbors, used for
// deterministic tie-breaking.
type Neighbor struct {
	Record     *models.ExperienceRecord
	Similarity float64
	Index      int
}

// CosineSimilarity computes the cosine of the angle between two feature
// vectors, clamped to [0, 1]. Negative correlation carries no meaning
// for peer matching, so negative cosines collapse to zero, as does any
// comparison involving a zero-norm vector.
func CosineSimilarity(a, b Vector) float64 {
	var dot, normA, normB float64
	for i := 0; i < VectorDim; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	if sim < 0 {
		return 0
	}
	return sim
}

// FindNeighbors selects the k experience records for the given drug most
// similar to the user vector. Records are matched on PrimaryDrug exactly
// as stored; callers standardize drug names at ingest, not here.
//
// Selection is deterministic: ties in similarity keep corpus order. When
// fewer than k records exist for the drug, all of them are returned.
func FindNeighbors(userVec Vector, corpus []models.ExperienceRecord, drug string, k int) []Neighbor {
	if k <= 0 || len(corpus) == 0 {
		return nil
	}

	neighbors := make([]Neighbor, 0, k)
	for i := range corpus {
		rec := &corpus[i]
		if rec.PrimaryDrug != drug {
			continue
		}
		neighbors = append(neighbors, Neighbor{
			Record:     rec,
			Similarity: CosineSimilarity(userVec, ExperienceVector(rec)),
			Index:      i,
		})
	}

	if len(neighbors) == 0 {
		return nil
	}

	// Stable keeps corpus order among equal similarities.
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Similarity > neighbors[j].Similarity
	})

	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}
