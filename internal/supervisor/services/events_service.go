// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package services

import (
	"context"

	"github.com/akerrigan/glpcompass/internal/events"
)

// CorpusEventSource is the subscriber side of the events package: a
// blocking consume loop that invokes the handler per event until the
// context is canceled.
type CorpusEventSource interface {
	HandleCorpusUpdated(ctx context.Context, fn func(ctx context.Context, event *events.CorpusUpdated) error) error
}

// CorpusEventsService runs the corpus.updated subscriber under
// supervision. The handler typically invalidates the provider snapshot
// and the API response cache.
type CorpusEventsService struct {
	source  CorpusEventSource
	handler func(ctx context.Context, event *events.CorpusUpdated) error
	name    string
}

// NewCorpusEventsService creates the subscriber service wrapper.
func NewCorpusEventsService(source CorpusEventSource, handler func(ctx context.Context, event *events.CorpusUpdated) error) *CorpusEventsService {
	return &CorpusEventsService{
		source:  source,
		handler: handler,
		name:    "corpus-events",
	}
}

// Serve implements suture.Service. Delegates to the subscriber's
// consume loop, which returns when the context is canceled.
func (s *CorpusEventsService) Serve(ctx context.Context) error {
	return s.source.HandleCorpusUpdated(ctx, s.handler)
}

// String implements fmt.Stringer for supervisor logs.
func (s *CorpusEventsService) String() string {
	return s.name
}
