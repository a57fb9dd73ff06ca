// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package models

import "time"

// APIResponse is the standardized envelope for the ambient endpoints
// (probes, metrics helpers, error responses). The alert endpoints return
// their documented shapes at the top level for client compatibility.
//
// Status is "success" or "error"; Error is populated only for "error".
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response metadata for observability.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
}

// APIError is a structured error payload.
//
// Common codes: VALIDATION_ERROR, INVALID_BODY, INTERNAL_ERROR,
// SERVICE_UNAVAILABLE, METHOD_NOT_ALLOWED.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
