// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package models

// Inbound event bodies. Every field is optional by design: missing fields
// fall back to documented defaults instead of rejecting the request, so a
// panic button with a half-broken GPS fix still raises an alert.

// PanicRequest is the body of POST /panic.
type PanicRequest struct {
	UserID    string    `json:"user_id"`
	VehicleID string    `json:"vehicle_id"`
	Lang      string    `json:"lang"`
	Location  *Location `json:"location"`
}

// AnomalyRequest is the body of POST /anomaly.
type AnomalyRequest struct {
	AnomalyType     string    `json:"anomaly_type"`
	VehicleID       string    `json:"vehicle_id"`
	Lang            string    `json:"lang"`
	CurrentLocation *Location `json:"current_location"`
}

// EscalateRequest is the body of POST /escalate.
type EscalateRequest struct {
	AnomalyType     string   `json:"anomaly_type"`
	Contacts        []string `json:"contacts"`
	VehicleID       string   `json:"vehicle_id"`
	Lang            string   `json:"lang"`
	EscalationLevel string   `json:"escalation_level"`
}

// AlertResponse is returned by the panic/anomaly endpoints.
type AlertResponse struct {
	Status string       `json:"status"`
	Alert  *AlertRecord `json:"alert"`
}

// EscalateResponse is returned by POST /escalate.
type EscalateResponse struct {
	Status   string   `json:"status"`
	AlertID  string   `json:"alert_id"`
	Levels   []string `json:"levels"`
	Notified []string `json:"notified"`
}

// ExplanationResponse is returned by GET /explanation.
type ExplanationResponse struct {
	Explanation string                 `json:"explanation"`
	Context     map[string]interface{} `json:"context"`
}

// HealthStatus is returned by GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Clients int    `json:"clients"`
	Alerts  int    `json:"alerts"`
}
