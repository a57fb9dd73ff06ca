// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package models defines the shared value types and wire shapes of the
// relay: coordinates, the tagged location variant, alert records, risk
// assessments, and the HTTP request/response DTOs.
//
// Everything in this package is a plain value type with JSON tags; no
// package here holds state or starts goroutines.
package models
