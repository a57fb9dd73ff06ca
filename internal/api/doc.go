// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package api provides the relay's HTTP surface: alert ingestion
// endpoints, guidance and explanation queries, the dashboard websocket
// upgrade, health probes, and the chi router that assembles them with
// CORS, rate limiting, and Prometheus instrumentation.
//
// The alert endpoints return their documented response shapes at the top
// level; ambient endpoints (probes, errors) use the standard
// {status,data,metadata,error} envelope.
package api
