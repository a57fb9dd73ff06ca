// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package api

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/raksha-net/relay/internal/logging"
	"github.com/raksha-net/relay/internal/models"
)

// maxBurstCount caps a single burst regardless of the count parameter.
const maxBurstCount = 50

// simulateVehicles cycles through the burst simulation so the dashboard
// shows distinct vehicles.
var simulateVehicles = []string{"Bus #17", "Bus #9", "Bus #4", "Cab #23"}

// SimulatePanic synthesizes one panic event and runs it through the full
// pipeline: log append, broadcast, acknowledgment.
//
// POST /simulate/panic
func (h *Handler) SimulatePanic(w http.ResponseWriter, r *http.Request) {
	record := h.pipeline.IngestPanic(r.Context(), models.PanicRequest{
		UserID:    "simulator",
		VehicleID: simulateVehicles[0],
		Lang:      "en",
		Location:  pointPtr(defaultCoordinate),
	})

	respondRaw(w, http.StatusOK, models.AlertResponse{
		Status: "alert sent",
		Alert:  &record,
	})
}

// SimulateBurst synthesizes a paced run of panic events, exercising log
// eviction and fanout under load.
//
// POST /simulate/burst?count= (clamped to [1,50])
func (h *Handler) SimulateBurst(w http.ResponseWriter, r *http.Request) {
	count := getIntParam(r, "count", h.config.Alerts.BurstSize)
	if count < 1 {
		count = 1
	}
	if count > maxBurstCount {
		count = maxBurstCount
	}

	// Pace emission so a large burst does not monopolize the broadcast
	// queue; the first event goes out immediately.
	limiter := rate.NewLimiter(rate.Limit(h.config.Alerts.BurstRate), 1)

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if err := limiter.Wait(r.Context()); err != nil {
			logger := logging.Ctx(r.Context())
			logger.Warn().Err(err).Int("emitted", len(ids)).Msg("burst interrupted")
			break
		}

		vehicle := simulateVehicles[i%len(simulateVehicles)]
		coord := models.Coordinate{
			Lat: defaultCoordinate.Lat + float64(i)*0.002,
			Lng: defaultCoordinate.Lng + float64(i)*0.0015,
		}
		record := h.pipeline.IngestPanic(r.Context(), models.PanicRequest{
			UserID:    "simulator",
			VehicleID: vehicle,
			Lang:      "en",
			Location:  pointPtr(coord),
		})
		ids = append(ids, record.ID)
	}

	respondRaw(w, http.StatusOK, map[string]interface{}{
		"status":    "burst sent",
		"count":     len(ids),
		"alert_ids": ids,
		"paced_at":  h.config.Alerts.BurstRate,
		"sent_at":   time.Now().UTC(),
	})
}

func pointPtr(c models.Coordinate) *models.Location {
	l := models.PointLocation(c)
	return &l
}
