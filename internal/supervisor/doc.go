// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

/*
Package supervisor provides suture-based process supervision.

The tree has three layers for failure isolation:

  - data: ingest journal maintenance
  - messaging: NATS components (event subscriber)
  - api: the HTTP server

A crash in the messaging layer is restarted with backoff without
touching the API layer, which keeps serving from the current corpus
snapshot. Supervisor events are logged through the sutureslog bridge
onto the service's zerolog output.
*/
package supervisor
