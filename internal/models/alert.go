// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package models

import "time"

// AlertKind classifies the originating event of an alert record.
type AlertKind string

const (
	// AlertKindPanic is a passenger-triggered panic button press.
	AlertKindPanic AlertKind = "panic"
	// AlertKindAnomaly is a detector-reported anomaly (route deviation,
	// unsafe driving, distress voice).
	AlertKindAnomaly AlertKind = "anomaly"
)

// AlertRecord is an immutable description of one safety event. Records are
// created exactly once by the pipeline and never mutated after they are
// appended to the alert log.
type AlertRecord struct {
	ID          string    `json:"id"`
	Kind        AlertKind `json:"kind"`
	VehicleID   VehicleID `json:"vehicle_id"`
	UserID      string    `json:"user_id,omitempty"`
	AnomalyType string    `json:"anomaly_type,omitempty"`
	Location    Location  `json:"location"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}
