// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

//go:build !nats

package main

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/config"
	"github.com/akerrigan/glpcompass/internal/events"
	"github.com/akerrigan/glpcompass/internal/logging"
)

// eventsComponents is a stub for non-NATS builds.
type eventsComponents struct{}

// initEvents is a no-op stub for non-NATS builds.
// Returns nil to indicate the event spine is not available.
func initEvents(_ context.Context, cfg *config.Config, _ zerolog.Logger) (*eventsComponents, error) {
	if cfg.Events.Enabled {
		logging.Warn().Msg("EVENTS_ENABLED=true but NATS support not compiled (build with -tags nats)")
	}
	return nil, nil
}

// Publisher returns nil for non-NATS builds.
func (c *eventsComponents) Publisher() *events.Publisher {
	return nil
}

// Subscriber returns nil for non-NATS builds.
func (c *eventsComponents) Subscriber() *events.Subscriber {
	return nil
}

// Shutdown is a no-op stub for non-NATS builds.
func (c *eventsComponents) Shutdown(_ context.Context) {}
