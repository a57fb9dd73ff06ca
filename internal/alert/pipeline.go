// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package alert implements the ingestion pipeline: an inbound event is
// validated with defaults, its location resolved, recorded in the alert
// log, broadcast to subscribers, and acknowledged to the caller. Each step
// runs once, synchronously; only ID generation is non-deterministic.
package alert

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/raksha-net/relay/internal/geo"
	"github.com/raksha-net/relay/internal/logging"
	"github.com/raksha-net/relay/internal/metrics"
	"github.com/raksha-net/relay/internal/models"
	"github.com/raksha-net/relay/internal/store"
)

// Defaults applied to events with missing optional fields. Rejecting a
// distress signal over absent metadata is the one thing this service must
// never do.
const (
	DefaultPanicVehicle   = "Bus #17"
	DefaultAnomalyVehicle = "Unknown Vehicle"
	DefaultLanguage       = "en"
	DefaultAnomalyType    = "unspecified"
)

// Broadcaster pushes a completed alert record to all live subscribers.
// Satisfied by *websocket.Hub.
type Broadcaster interface {
	BroadcastAlert(record *models.AlertRecord)
}

// Pipeline orchestrates alert ingestion. It owns no state of its own;
// the stores and broadcaster are injected.
type Pipeline struct {
	locations *store.LocationStore
	log       *store.AlertLog
	hub       Broadcaster
}

// NewPipeline creates a pipeline over the given stores and broadcaster.
func NewPipeline(locations *store.LocationStore, log *store.AlertLog, hub Broadcaster) *Pipeline {
	return &Pipeline{locations: locations, log: log, hub: hub}
}

// IngestPanic runs a panic-button event through the pipeline and returns
// the acknowledged record.
func (p *Pipeline) IngestPanic(ctx context.Context, req models.PanicRequest) models.AlertRecord {
	vehicleID := models.VehicleID(req.VehicleID)
	if vehicleID == "" {
		vehicleID = DefaultPanicVehicle
	}
	lang := req.Lang
	if lang == "" {
		lang = DefaultLanguage
	}

	location := p.resolveLocation(vehicleID, req.Location)

	record := models.AlertRecord{
		ID:        NewAlertID(),
		Kind:      models.AlertKindPanic,
		VehicleID: vehicleID,
		UserID:    req.UserID,
		Location:  location,
		Message:   Message(lang, location.String(), string(vehicleID), ReasonPanic),
		Timestamp: time.Now().UTC(),
	}

	p.record(ctx, record)
	return record
}

// IngestAnomaly runs a detector-reported anomaly through the pipeline and
// returns the acknowledged record.
func (p *Pipeline) IngestAnomaly(ctx context.Context, req models.AnomalyRequest) models.AlertRecord {
	vehicleID := models.VehicleID(req.VehicleID)
	if vehicleID == "" {
		vehicleID = DefaultAnomalyVehicle
	}
	lang := req.Lang
	if lang == "" {
		lang = DefaultLanguage
	}
	anomalyType := req.AnomalyType
	if anomalyType == "" {
		anomalyType = DefaultAnomalyType
	}

	location := p.resolveLocation(vehicleID, req.CurrentLocation)

	record := models.AlertRecord{
		ID:          NewAlertID(),
		Kind:        models.AlertKindAnomaly,
		VehicleID:   vehicleID,
		AnomalyType: anomalyType,
		Location:    location,
		Message:     Message(lang, location.String(), string(vehicleID), anomalyType),
		Timestamp:   time.Now().UTC(),
	}

	p.record(ctx, record)
	return record
}

// resolveLocation turns the raw inbound location into a concrete point or
// the unknown sentinel, exactly once:
//
//  1. a named alias known to the gazetteer resolves to its coordinate;
//  2. any concrete coordinate (sent or resolved) becomes the vehicle's
//     last-known location;
//  3. with nothing usable, the vehicle's last-known location substitutes;
//  4. otherwise the location stays unknown.
func (p *Pipeline) resolveLocation(vehicleID models.VehicleID, loc *models.Location) models.Location {
	resolved := models.UnknownLocation()
	if loc != nil {
		resolved = *loc
	}

	if name, ok := resolved.Name(); ok {
		if c, found := geo.Resolve(name); found {
			resolved = models.PointLocation(c)
		} else {
			resolved = models.UnknownLocation()
		}
	}

	if c, ok := resolved.Point(); ok {
		p.locations.Update(vehicleID, c)
		return resolved
	}

	if c, ok := p.locations.Lookup(vehicleID); ok {
		return models.PointLocation(c)
	}
	return models.UnknownLocation()
}

// record appends the alert and hands it to the broadcaster. Broadcast
// failures are the hub's problem; nothing here can fail the pipeline.
func (p *Pipeline) record(ctx context.Context, record models.AlertRecord) {
	p.log.Append(record)
	metrics.AlertsIngested.WithLabelValues(string(record.Kind)).Inc()
	metrics.AlertLogSize.Set(float64(p.log.Len()))

	if p.hub != nil {
		p.hub.BroadcastAlert(&record)
	}

	logger := logging.Ctx(ctx)
	logger.Info().
		Str("alert_id", record.ID).
		Str("kind", string(record.Kind)).
		Str("vehicle_id", string(record.VehicleID)).
		Str("location", record.Location.String()).
		Msg("alert ingested")
}

// NewAlertID generates a short opaque alert token. Uniqueness and the
// "ALERT-" prefix are the only contract; the format may change.
func NewAlertID() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return "ALERT-" + hex.EncodeToString(buf)
}
