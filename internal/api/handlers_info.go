// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/raksha-net/relay/internal/alert"
	"github.com/raksha-net/relay/internal/geo"
	"github.com/raksha-net/relay/internal/models"
	"github.com/raksha-net/relay/internal/risk"
)

// defaultCoordinate anchors guidance queries that resolve no coordinate
// at all: the metro center the gazetteer and support tables cover.
var defaultCoordinate = models.Coordinate{Lat: 12.9716, Lng: 77.5946}

// guidanceQuery holds the validated GET /guidance parameters. Bounds
// apply only when the parameter was supplied.
type guidanceQuery struct {
	Risk string  `validate:"omitempty,oneof=low medium high"`
	Lat  float64 `validate:"omitempty,latitude"`
	Lng  float64 `validate:"omitempty,longitude"`
}

// Explanation describes why an alert was (or would be) raised for a
// vehicle, with the vehicle's last-known location as context.
//
// GET /explanation?reason=&vehicle_id=
func (h *Handler) Explanation(w http.ResponseWriter, r *http.Request) {
	reason := r.URL.Query().Get("reason")
	if reason == "" {
		reason = alert.ReasonPanic
	}
	vehicleID := r.URL.Query().Get("vehicle_id")
	if vehicleID == "" {
		vehicleID = alert.DefaultAnomalyVehicle
	}

	lastKnown := models.UnknownLocation()
	if c, ok := h.locations.Lookup(models.VehicleID(vehicleID)); ok {
		lastKnown = models.PointLocation(c)
	}

	respondRaw(w, http.StatusOK, models.ExplanationResponse{
		Explanation: fmt.Sprintf("Alert context for %s: %s. Guidance is derived from the vehicle's last known location and the recent alert history.",
			vehicleID, reasonExplanation(reason)),
		Context: map[string]interface{}{
			"vehicle_id":          vehicleID,
			"reason":              reason,
			"last_known_location": lastKnown,
			"alerts_logged":       h.alertLog.Len(),
		},
	})
}

// reasonExplanation renders the alert reason as a sentence fragment.
func reasonExplanation(reason string) string {
	switch reason {
	case alert.ReasonPanic:
		return "a passenger pressed the panic button"
	case "distress_voice":
		return "distress keywords were detected in cabin audio"
	case "route_deviation":
		return "the vehicle deviated from its assigned route"
	case "unsafe_driving":
		return "driving telemetry crossed safety thresholds"
	default:
		return "an anomaly of type " + reason + " was reported"
	}
}

// Guidance computes a risk assessment for a coordinate resolved from the
// query parameters.
//
// GET /guidance?location=&risk=&lat=&lng=&vehicle_id=
//
// Coordinate resolution order: explicit lat/lng pair, then a gazetteer
// alias in location, then the vehicle's last-known location, then the
// metro-center default. A risk parameter naming a valid tier pins the
// tier directly; otherwise the engine scores the coordinate.
func (h *Handler) Guidance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := guidanceQuery{Risk: q.Get("risk")}
	lat, latOK := getFloatParam(r, "lat")
	lng, lngOK := getFloatParam(r, "lng")
	query.Lat, query.Lng = lat, lng

	if apiErr := validateRequest(&query); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	coord := defaultCoordinate
	switch {
	case latOK && lngOK:
		coord = models.Coordinate{Lat: lat, Lng: lng}
	case q.Get("location") != "":
		if c, ok := geo.Resolve(q.Get("location")); ok {
			coord = c
		}
	case q.Get("vehicle_id") != "":
		if c, ok := h.locations.Lookup(models.VehicleID(q.Get("vehicle_id"))); ok {
			coord = c
		}
	}

	var tier models.RiskTier
	switch query.Risk {
	case string(models.RiskLow), string(models.RiskMedium), string(models.RiskHigh):
		// Caller asserts the tier; honor it so guidance is stable for a
		// known risk level regardless of the coordinate heuristic.
		tier = models.RiskTier(query.Risk)
	default:
		tier = h.engine.Assess(coord, "", "")
	}

	text, action := risk.GuidanceFor(tier)
	respondRaw(w, http.StatusOK, models.RiskAssessment{
		Tier:              tier,
		GuidanceText:      text,
		RecommendedAction: action,
		ReferenceLocation: coord,
		NearestSupport:    risk.NearestSupport(coord),
		SafeRoute:         h.engine.SafeRoute(coord, tier),
	})
}

// RecentAlerts returns the newest alert records, most recent first.
//
// GET /alerts/recent?limit= (clamped to [1,100] by the store)
func (h *Handler) RecentAlerts(w http.ResponseWriter, r *http.Request) {
	limit := getIntParam(r, "limit", 20)
	respondRaw(w, http.StatusOK, h.alertLog.Recent(limit))
}

// Health reports liveness plus the live subscriber and alert counts.
//
// GET /health returns {status:"ok", clients, alerts} at the top level.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	clients := 0
	if h.wsHub != nil {
		clients = h.wsHub.ClientCount()
	}

	respondRaw(w, http.StatusOK, models.HealthStatus{
		Status:  "ok",
		Clients: clients,
		Alerts:  h.alertLog.Len(),
	})
}

// HealthLive is the liveness probe: the process is up.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]interface{}{"alive": true},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady is the readiness probe. The relay has no external
// dependencies to await; it is ready once the hub is wired.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "websocket hub not ready", ErrHubUnavailable)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]interface{}{"ready": true},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// Root is a human-friendly status line.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"message": "raksha relay is running",
			"uptime":  time.Since(h.startTime).Round(time.Second).String(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
