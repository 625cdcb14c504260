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

// EmbeddedServer is a stub when NATS dependencies are not compiled in.
// Build with -tags=nats to enable the embedded JetStream server.
type EmbeddedServer struct{}

// NewEmbeddedServer returns an error in builds without the nats tag.
func NewEmbeddedServer(cfg Config) (*EmbeddedServer, error) {
	return nil, fmt.Errorf("embedded NATS server not available: build with -tags=nats")
}

// ClientURL returns an empty URL for the stub.
func (s *EmbeddedServer) ClientURL() string { return "" }

// IsRunning always reports false for the stub.
func (s *EmbeddedServer) IsRunning() bool { return false }

// Shutdown is a no-op stub.
func (s *EmbeddedServer) Shutdown(ctx context.Context) error { return nil }
