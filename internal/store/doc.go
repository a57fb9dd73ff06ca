// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package store holds the process-lifetime in-memory state of the relay:
// last-known vehicle locations and the bounded alert history. Both stores
// are owned explicitly and injected into handlers; nothing here is a
// package-level global. All state is lost on restart by design.
package store
