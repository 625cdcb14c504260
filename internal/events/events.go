// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package events

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// TopicCorpusUpdated carries notifications that the experience corpus
// changed. Subscribers drop caches and snapshots built from the previous
// corpus state.
const TopicCorpusUpdated = "corpus.updated"

// CorpusUpdated is published after an ingest batch commits.
type CorpusUpdated struct {
	// EventID uniquely identifies the event; it doubles as the NATS
	// message ID for deduplication.
	EventID string `json:"event_id"`

	// Inserted is the number of records the committed batch added.
	Inserted int `json:"inserted"`

	// Source names the producer: "ingest", "replay", or "cli".
	Source string `json:"source"`

	// OccurredAt is when the batch committed, UTC.
	OccurredAt time.Time `json:"occurred_at"`
}

// NewCorpusUpdated builds an event with a fresh ID and timestamp.
func NewCorpusUpdated(inserted int, source string) *CorpusUpdated {
	return &CorpusUpdated{
		EventID:    uuid.New().String(),
		Inserted:   inserted,
		Source:     source,
		OccurredAt: time.Now().UTC(),
	}
}

// Marshal serializes the event for the wire.
func (e *CorpusUpdated) Marshal() ([]byte, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal corpus-updated event: %w", err)
	}
	return data, nil
}

// UnmarshalCorpusUpdated deserializes a wire payload.
func UnmarshalCorpusUpdated(data []byte) (*CorpusUpdated, error) {
	var e CorpusUpdated
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal corpus-updated event: %w", err)
	}
	if e.EventID == "" {
		return nil, fmt.Errorf("corpus-updated event missing event_id")
	}
	return &e, nil
}
