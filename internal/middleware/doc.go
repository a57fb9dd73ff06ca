// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package middleware provides http.HandlerFunc middleware for request
// identification and Prometheus instrumentation. Chi-native middleware
// (CORS, rate limiting, recovery) is assembled in the api package.
package middleware
