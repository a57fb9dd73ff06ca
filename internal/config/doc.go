// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package config loads the relay's configuration with koanf v2, layered
// as defaults, then an optional YAML file, then RELAY_-prefixed
// environment variables. The loaded Config is validated once at startup
// and immutable afterward.
package config
