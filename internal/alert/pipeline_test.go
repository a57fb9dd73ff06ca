// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package alert

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/raksha-net/relay/internal/logging"
	"github.com/raksha-net/relay/internal/models"
	"github.com/raksha-net/relay/internal/store"
)

//nolint:gochecknoinits // init ensures quiet logging for tests
func init() {
	logging.Init(logging.Config{Level: "error", Output: io.Discard})
}

// captureBroadcaster records every broadcast alert.
type captureBroadcaster struct {
	records []*models.AlertRecord
}

func (c *captureBroadcaster) BroadcastAlert(r *models.AlertRecord) {
	c.records = append(c.records, r)
}

func newTestPipeline() (*Pipeline, *store.LocationStore, *store.AlertLog, *captureBroadcaster) {
	locations := store.NewLocationStore()
	log := store.NewAlertLog(store.DefaultAlertLogCapacity)
	hub := &captureBroadcaster{}
	return NewPipeline(locations, log, hub), locations, log, hub
}

func loc(lat, lng float64) *models.Location {
	l := models.PointLocation(models.Coordinate{Lat: lat, Lng: lng})
	return &l
}

func named(name string) *models.Location {
	l := models.NamedLocation(name)
	return &l
}

func TestIngestPanicWithCoordinate(t *testing.T) {
	p, locations, log, hub := newTestPipeline()

	record := p.IngestPanic(context.Background(), models.PanicRequest{
		VehicleID: "Bus #9",
		Lang:      "hi",
		Location:  loc(12.97, 77.59),
	})

	point, ok := record.Location.Point()
	if !ok {
		t.Fatal("expected concrete location on record")
	}
	if point.Lat != 12.97 || point.Lng != 77.59 {
		t.Errorf("location %+v, want (12.97,77.59)", point)
	}
	if !strings.HasPrefix(record.ID, "ALERT-") {
		t.Errorf("alert id %q missing ALERT- prefix", record.ID)
	}
	if record.Kind != models.AlertKindPanic {
		t.Errorf("kind = %s", record.Kind)
	}
	if !strings.Contains(record.Message, "पैनिक") {
		t.Errorf("expected Hindi template in message, got %q", record.Message)
	}

	// Coordinate-bearing events update the last-known location.
	last, ok := locations.Lookup("Bus #9")
	if !ok || last.Lat != 12.97 {
		t.Errorf("last-known location not updated: %+v found=%v", last, ok)
	}

	if log.Len() != 1 {
		t.Errorf("expected 1 log record, got %d", log.Len())
	}
	if len(hub.records) != 1 || hub.records[0].ID != record.ID {
		t.Errorf("broadcast missing or wrong: %+v", hub.records)
	}
}

func TestIngestPanicDefaults(t *testing.T) {
	p, _, _, _ := newTestPipeline()

	record := p.IngestPanic(context.Background(), models.PanicRequest{})
	if record.VehicleID != DefaultPanicVehicle {
		t.Errorf("vehicle = %q, want default %q", record.VehicleID, DefaultPanicVehicle)
	}
	if !record.Location.IsUnknown() {
		t.Errorf("expected unknown location, got %s", record.Location)
	}
	if !strings.Contains(record.Message, "Distress Detected") {
		t.Errorf("expected English fallback message, got %q", record.Message)
	}
}

func TestIngestAnomalyFallsBackToLastKnown(t *testing.T) {
	p, locations, _, _ := newTestPipeline()
	locations.Update("Bus #9", models.Coordinate{Lat: 12.97, Lng: 77.59})

	record := p.IngestAnomaly(context.Background(), models.AnomalyRequest{
		AnomalyType: "unsafe_driving",
		VehicleID:   "Bus #9",
	})

	point, ok := record.Location.Point()
	if !ok {
		t.Fatal("expected last-known substitution, got unknown")
	}
	if point.Lat != 12.97 || point.Lng != 77.59 {
		t.Errorf("substituted location %+v", point)
	}
	if record.Kind != models.AlertKindAnomaly {
		t.Errorf("kind = %s", record.Kind)
	}
	if record.AnomalyType != "unsafe_driving" {
		t.Errorf("anomaly type = %q", record.AnomalyType)
	}
}

func TestIngestAnomalyDefaults(t *testing.T) {
	p, _, _, _ := newTestPipeline()

	record := p.IngestAnomaly(context.Background(), models.AnomalyRequest{})
	if record.VehicleID != DefaultAnomalyVehicle {
		t.Errorf("vehicle = %q, want %q", record.VehicleID, DefaultAnomalyVehicle)
	}
	if record.AnomalyType != DefaultAnomalyType {
		t.Errorf("anomaly type = %q, want %q", record.AnomalyType, DefaultAnomalyType)
	}
}

func TestResolveNamedAlias(t *testing.T) {
	p, locations, _, _ := newTestPipeline()

	record := p.IngestPanic(context.Background(), models.PanicRequest{
		VehicleID: "Bus #4",
		Location:  named("Majestic Bus Stand"),
	})

	point, ok := record.Location.Point()
	if !ok {
		t.Fatal("gazetteer alias should resolve to a point")
	}
	if point.Lat != 12.9767 {
		t.Errorf("resolved %+v", point)
	}

	// Resolved aliases count as coordinate-bearing events.
	if _, ok := locations.Lookup("Bus #4"); !ok {
		t.Error("resolved alias did not update last-known location")
	}
}

func TestResolveUnknownAliasWithoutHistory(t *testing.T) {
	p, _, _, _ := newTestPipeline()

	record := p.IngestPanic(context.Background(), models.PanicRequest{
		VehicleID: "Bus #4",
		Location:  named("Atlantis Central"),
	})

	if !record.Location.IsUnknown() {
		t.Errorf("unknown alias with no history should stay unknown, got %s", record.Location)
	}
}

func TestResolveUnknownAliasWithHistory(t *testing.T) {
	p, locations, _, _ := newTestPipeline()
	locations.Update("Bus #4", models.Coordinate{Lat: 13.0, Lng: 77.6})

	record := p.IngestPanic(context.Background(), models.PanicRequest{
		VehicleID: "Bus #4",
		Location:  named("Atlantis Central"),
	})

	point, ok := record.Location.Point()
	if !ok || point.Lat != 13.0 {
		t.Errorf("expected last-known fallback for unresolvable alias, got %s", record.Location)
	}
}

func TestMessageLanguages(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "Distress Detected"},
		{"hi", "संकट का पता चला"},
		{"kn", "ಅಪಾಯ ಪತ್ತೆಯಾಗಿದೆ"},
		{"fr", "Distress Detected"}, // unsupported falls back to English
		{"", "Distress Detected"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			msg := Message(tt.lang, "(12.9700,77.5900)", "Bus #9", ReasonPanic)
			if !strings.Contains(msg, tt.want) {
				t.Errorf("Message(%q) = %q, want substring %q", tt.lang, msg, tt.want)
			}
			if !strings.Contains(msg, "Bus #9") {
				t.Errorf("message missing vehicle id: %q", msg)
			}
		})
	}
}

func TestAlertIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewAlertID()
		if seen[id] {
			t.Fatalf("duplicate alert id %s", id)
		}
		seen[id] = true
	}
}
