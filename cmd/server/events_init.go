// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

//go:build nats

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/akerrigan/glpcompass/internal/config"
	"github.com/akerrigan/glpcompass/internal/events"
	"github.com/akerrigan/glpcompass/internal/logging"
)

// eventsComponents holds the NATS event spine for lifecycle management.
type eventsComponents struct {
	server     *events.EmbeddedServer
	publisher  *events.Publisher
	subscriber *events.Subscriber
}

// initEvents brings up the corpus.updated spine when EVENTS_ENABLED=true:
// an embedded or external NATS server, the JetStream stream, and the
// publisher and subscriber halves. Returns nil when the spine is
// disabled; main treats a nil *eventsComponents as "no events".
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func initEvents(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*eventsComponents, error) {
	if !cfg.Events.Enabled {
		logging.Info().Msg("Event spine disabled (EVENTS_ENABLED=false)")
		return nil, nil
	}

	logging.Info().Msg("Initializing NATS event spine...")

	components := &eventsComponents{}

	var url string
	if cfg.Events.Embedded {
		server, err := events.NewEmbeddedServer(cfg.Events)
		if err != nil {
			return nil, fmt.Errorf("start embedded NATS server: %w", err)
		}
		components.server = server
		url = server.ClientURL()
		logging.Info().Str("url", url).Msg("Embedded NATS server started")
	} else {
		url = cfg.Events.URL
		logging.Info().Str("url", url).Msg("Using external NATS server")
	}

	if err := events.EnsureStream(ctx, cfg.Events, url); err != nil {
		components.Shutdown(ctx)
		return nil, fmt.Errorf("ensure JetStream stream: %w", err)
	}

	adapter := events.NewLoggerAdapter(logger)

	publisher, err := events.NewPublisher(cfg.Events, url, adapter)
	if err != nil {
		components.Shutdown(ctx)
		return nil, fmt.Errorf("create publisher: %w", err)
	}
	components.publisher = publisher

	subscriber, err := events.NewSubscriber(cfg.Events, url, adapter)
	if err != nil {
		components.Shutdown(ctx)
		return nil, fmt.Errorf("create subscriber: %w", err)
	}
	components.subscriber = subscriber

	logging.Info().Str("stream", cfg.Events.StreamName).Msg("NATS event spine initialized")
	return components, nil
}

// Publisher returns the corpus.updated publisher, nil when disabled.
func (c *eventsComponents) Publisher() *events.Publisher {
	if c == nil {
		return nil
	}
	return c.publisher
}

// Subscriber returns the corpus.updated subscriber, nil when disabled.
func (c *eventsComponents) Subscriber() *events.Subscriber {
	if c == nil {
		return nil
	}
	return c.subscriber
}

// Shutdown tears the spine down in reverse order of initialization.
func (c *eventsComponents) Shutdown(ctx context.Context) {
	if c == nil {
		return
	}
	if c.subscriber != nil {
		if err := c.subscriber.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing subscriber")
		}
	}
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing publisher")
		}
	}
	if c.server != nil {
		if err := c.server.Shutdown(ctx); err != nil {
			logging.Error().Err(err).Msg("Error shutting down embedded NATS server")
		}
	}
}
