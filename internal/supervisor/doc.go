// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package supervisor builds the suture supervision tree that keeps the
// websocket hub and HTTP server running, restarting either independently
// on failure. Lifecycle events are logged through the slog bridge over
// the relay's zerolog logger.
package supervisor
