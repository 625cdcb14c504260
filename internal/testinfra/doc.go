// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to manage Docker containers for integration tests,
// providing realistic testing environments that closely match production.
//
// # Postgres Container
//
// The PostgresContainer provides a real Postgres instance shaped like the
// extraction pipeline's corpus database:
//
//	func TestPostgresCorpus(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//
//	    ctx := context.Background()
//	    pg, err := testinfra.NewPostgresContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, pg.Container)
//
//	    source, err := corpus.OpenPostgres(ctx, corpus.PostgresConfig{URL: pg.URL}, logger)
//	    // ...
//	}
//
// # CI Considerations
//
// These tests require Docker and the -tags integration build tag. They skip
// gracefully when Docker is unavailable. First run may need to download
// container images; subsequent runs use cached images.
package testinfra
