// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

package events

import (
	"fmt"
	"time"
)

// Config configures the event spine. Disabled by default; the rest of
// the service runs fine without it, ingestion just invalidates the
// provider directly.
type Config struct {
	// Enabled turns the spine on. Requires a -tags=nats build.
	Enabled bool `koanf:"enabled"`

	// Embedded runs an in-process NATS server instead of connecting to
	// an external one. URL is ignored when set.
	Embedded bool `koanf:"embedded"`

	// URL is the external NATS server address.
	URL string `koanf:"url"`

	// Embedded server settings.
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	StoreDir string `koanf:"store_dir"`

	// StreamName is the JetStream stream backing the corpus topics.
	StreamName string `koanf:"stream_name"`

	// QueueGroup load-balances subscribers across instances.
	QueueGroup string `koanf:"queue_group"`

	// DurableName prefixes durable consumer names.
	DurableName string `koanf:"durable_name"`

	// MaxAge bounds stream retention.
	MaxAge time.Duration `koanf:"max_age"`

	// Connection resilience.
	MaxReconnects int           `koanf:"max_reconnects"`
	ReconnectWait time.Duration `koanf:"reconnect_wait"`
	AckWait       time.Duration `koanf:"ack_wait"`

	// Publish circuit breaker.
	BreakerThreshold uint32        `koanf:"breaker_threshold"`
	BreakerCooldown  time.Duration `koanf:"breaker_cooldown"`
}

// DefaultConfig returns the production defaults: disabled, embedded
// server when enabled.
func DefaultConfig() Config {
	return Config{
		Enabled:          false,
		Embedded:         true,
		Host:             "127.0.0.1",
		Port:             4222,
		StoreDir:         "data/nats",
		StreamName:       "GLPCOMPASS",
		QueueGroup:       "glpcompass",
		DurableName:      "glpcompass",
		MaxAge:           24 * time.Hour,
		MaxReconnects:    -1, // retry forever
		ReconnectWait:    2 * time.Second,
		AckWait:          30 * time.Second,
		BreakerThreshold: 5,
		BreakerCooldown:  30 * time.Second,
	}
}

// Validate checks the configuration for an enabled spine.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if !c.Embedded && c.URL == "" {
		return fmt.Errorf("events: url is required when embedded is off")
	}
	if c.Embedded && c.StoreDir == "" {
		return fmt.Errorf("events: store_dir is required for the embedded server")
	}
	if c.StreamName == "" {
		return fmt.Errorf("events: stream_name is required")
	}
	return nil
}
