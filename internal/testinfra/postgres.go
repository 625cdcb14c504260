// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

//go:build integration

package testinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultPostgresImage matches the extraction pipeline's hosted version.
	DefaultPostgresImage = "postgres:16-alpine"

	// DefaultPostgresPort is the standard Postgres port.
	DefaultPostgresPort = "5432"

	testDBName     = "glpcompass_test"
	testDBUser     = "glpcompass"
	testDBPassword = "glpcompass-test"
)

// corpusSchema mirrors the denormalized view the extraction pipeline
// maintains, created as a plain table so tests can seed rows directly.
const corpusSchema = `
CREATE TABLE IF NOT EXISTS mv_experiences_denormalized (
	id                     TEXT PRIMARY KEY,
	primary_drug           TEXT,
	beginning_weight_lbs   DOUBLE PRECISION,
	weight_loss_lbs        DOUBLE PRECISION,
	weight_loss_percentage DOUBLE PRECISION,
	age                    INTEGER,
	sex                    TEXT,
	has_insurance          BOOLEAN,
	comorbidities          JSONB,
	side_effects           JSONB,
	cost_per_month         INTEGER,
	created_at             TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresContainer represents a running Postgres container seeded with
// the corpus schema.
type PostgresContainer struct {
	testcontainers.Container

	// URL is a pgx connection string for the test database.
	URL string
}

// PostgresOption configures the Postgres container.
type PostgresOption func(*postgresConfig)

type postgresConfig struct {
	image        string
	startTimeout time.Duration
}

// WithPostgresImage sets a custom Postgres Docker image.
func WithPostgresImage(image string) PostgresOption {
	return func(c *postgresConfig) {
		c.image = image
	}
}

// WithStartTimeout sets the timeout for waiting for Postgres to start.
func WithStartTimeout(timeout time.Duration) PostgresOption {
	return func(c *postgresConfig) {
		c.startTimeout = timeout
	}
}

// NewPostgresContainer creates and starts a Postgres container with the
// corpus schema applied. The caller owns cleanup via CleanupContainer.
func NewPostgresContainer(ctx context.Context, opts ...PostgresOption) (*PostgresContainer, error) {
	cfg := &postgresConfig{
		image:        DefaultPostgresImage,
		startTimeout: 60 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	req := testcontainers.ContainerRequest{
		Image:        cfg.image,
		ExposedPorts: []string{DefaultPostgresPort + "/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       testDBName,
			"POSTGRES_USER":     testDBUser,
			"POSTGRES_PASSWORD": testDBPassword,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort(DefaultPostgresPort+"/tcp"),
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		).WithStartupTimeout(cfg.startTimeout),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, DefaultPostgresPort+"/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mapped port: %w", err)
	}

	url := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		testDBUser, testDBPassword, host, port.Port(), testDBName)

	if err := applySchema(ctx, url); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &PostgresContainer{Container: container, URL: url}, nil
}

func applySchema(ctx context.Context, url string) error {
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("connect for schema: %w", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, corpusSchema); err != nil {
		return fmt.Errorf("apply corpus schema: %w", err)
	}
	return nil
}
