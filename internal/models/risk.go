// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package models

// RiskTier is the coarse low/medium/high risk classification.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// Recommended actions paired with each risk tier.
const (
	ActionContactPolice  = "contact_police"
	ActionMoveToSafeArea = "move_to_safe_area"
	ActionMonitor        = "monitor"
)

// SupportPoint is the nearest point of interest that could assist
// (police station, hospital, fuel stop).
type SupportPoint struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	DistanceKM float64 `json:"distance_km"`
}

// RiskAssessment is the transient guidance payload computed for a
// coordinate. It is returned to callers and never stored.
type RiskAssessment struct {
	Tier              RiskTier     `json:"tier"`
	GuidanceText      string       `json:"guidance_text"`
	RecommendedAction string       `json:"recommended_action"`
	ReferenceLocation Coordinate   `json:"reference_location"`
	NearestSupport    SupportPoint `json:"nearest_support"`
	// SafeRoute is empty exactly when Tier is low; otherwise it carries an
	// illustrative 4-point path.
	SafeRoute []Coordinate `json:"safe_route"`
}
