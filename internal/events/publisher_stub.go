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

// Publisher is a stub when NATS dependencies are not compiled in.
// Build with -tags=nats to enable the JetStream publisher.
type Publisher struct{}

// NewPublisher returns an error in builds without the nats tag.
func NewPublisher(cfg Config, url string, logger any) (*Publisher, error) {
	return nil, fmt.Errorf("NATS publisher not available: build with -tags=nats")
}

// PublishCorpusUpdated is a stub that returns an error.
func (p *Publisher) PublishCorpusUpdated(ctx context.Context, event *CorpusUpdated) error {
	return fmt.Errorf("NATS publisher not available: build with -tags=nats")
}

// BreakerState reports an inert breaker for the stub.
func (p *Publisher) BreakerState() string { return "closed" }

// Close is a no-op stub.
func (p *Publisher) Close() error { return nil }
