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

// EnsureStream returns an error in builds without the nats tag.
func EnsureStream(ctx context.Context, cfg Config, url string) error {
	return fmt.Errorf("stream initialization not available: build with -tags=nats")
}
