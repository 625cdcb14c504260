// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

//go:build !nats

package events

import (
	"context"
	"fmt"
)

// Subscriber is a stub when NATS dependencies are not compiled in.
// Build with -tags=nats to enable the JetStream subscriber.
type Subscriber struct{}

// NewSubscriber returns an error in builds without the nats tag.
func NewSubscriber(cfg Config, url string, logger any) (*Subscriber, error) {
	return nil, fmt.Errorf("NATS subscriber not available: build with -tags=nats")
}

// HandleCorpusUpdated is a stub that returns an error.
func (s *Subscriber) HandleCorpusUpdated(ctx context.Context, fn func(ctx context.Context, event *CorpusUpdated) error) error {
	return fmt.Errorf("NATS subscriber not available: build with -tags=nats")
}

// Close is a no-op stub.
func (s *Subscriber) Close() error { return nil }
