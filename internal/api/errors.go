// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package api

import "errors"

// ErrHubUnavailable indicates the websocket hub was not wired in.
var ErrHubUnavailable = errors.New("websocket hub is not available")
