// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package api

import (
	"net/http"

	"github.com/raksha-net/relay/internal/alert"
	"github.com/raksha-net/relay/internal/logging"
	"github.com/raksha-net/relay/internal/metrics"
	"github.com/raksha-net/relay/internal/models"
)

// Panic ingests a panic-button event.
//
// POST /panic with body {user_id?, vehicle_id?, lang?, location?}.
// Every field is optional; missing fields fall back to defaults. The
// completed record is appended to the alert log, pushed to all dashboard
// subscribers, and returned in the acknowledgment.
func (h *Handler) Panic(w http.ResponseWriter, r *http.Request) {
	var req models.PanicRequest
	decodeBody(r, &req)

	record := h.pipeline.IngestPanic(r.Context(), req)

	respondRaw(w, http.StatusOK, models.AlertResponse{
		Status: "alert sent",
		Alert:  &record,
	})
}

// Anomaly ingests a detector-reported anomaly event.
//
// POST /anomaly with body {anomaly_type?, vehicle_id?, lang?,
// current_location?}. Same permissive handling as Panic.
func (h *Handler) Anomaly(w http.ResponseWriter, r *http.Request) {
	var req models.AnomalyRequest
	decodeBody(r, &req)

	record := h.pipeline.IngestAnomaly(r.Context(), req)

	respondRaw(w, http.StatusOK, models.AlertResponse{
		Status: "alert sent",
		Alert:  &record,
	})
}

// Escalate plans and dispatches an escalation without creating an alert
// log entry; escalations correlate through their own ESC- id.
//
// POST /escalate with body {anomaly_type?, contacts?, vehicle_id?,
// lang?, escalation_level?}. Contacts are echoed back as the notified
// list; delivery is stubbed behind a circuit breaker and failures never
// surface to the caller.
func (h *Handler) Escalate(w http.ResponseWriter, r *http.Request) {
	var req models.EscalateRequest
	decodeBody(r, &req)

	anomalyType := req.AnomalyType
	if anomalyType == "" {
		anomalyType = alert.DefaultAnomalyType
	}

	result := h.dispatcher.Dispatch(anomalyType, req.Contacts)
	metrics.EscalationsDispatched.WithLabelValues(anomalyType).Inc()

	logger := logging.Ctx(r.Context())
	logger.Info().
		Str("escalation_id", result.ID).
		Str("anomaly_type", sanitizeLogValue(anomalyType)).
		Str("vehicle_id", sanitizeLogValue(req.VehicleID)).
		Strs("levels", result.Levels).
		Int("notified", len(result.Notified)).
		Msg("escalation dispatched")

	respondRaw(w, http.StatusOK, models.EscalateResponse{
		Status:   "escalation sent",
		AlertID:  result.ID,
		Levels:   result.Levels,
		Notified: result.Notified,
	})
}
