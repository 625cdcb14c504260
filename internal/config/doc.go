// GLPCompass - GLP-1 Peer Experience Recommendation Engine
// Copyright 2026 A. Kerrigan (akerrigan)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/akerrigan/glpcompass

// Package config loads service configuration with Koanf v2 in three
// layers, lowest to highest precedence:
//
//  1. struct defaults,
//  2. an optional YAML file (config.yaml, config.yml,
//     /etc/glpcompass/config.{yaml,yml}, or $GLPCOMPASS_CONFIG),
//  3. environment variables through an explicit name table.
//
// The loaded Config is validated before it is returned; an invalid
// configuration never reaches the rest of the service.
package config
