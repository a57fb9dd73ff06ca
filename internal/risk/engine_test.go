// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package risk

import (
	"testing"
	"time"

	"github.com/raksha-net/relay/internal/models"
)

// fixedClock returns a clock pinned to the given UTC hour.
func fixedClock(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 15, hour, 30, 0, 0, time.UTC)
	}
}

func TestAssessTiers(t *testing.T) {
	// (|12.0|+|77.0|) mod 3 == 2.0 for the daytime base coordinate.
	daytime := models.Coordinate{Lat: 12.0, Lng: 77.0}
	// (|12.5|+|77.5|) mod 3 == 0.0.
	zeroBase := models.Coordinate{Lat: 12.5, Lng: 77.5}

	tests := []struct {
		name        string
		coord       models.Coordinate
		hour        int
		baseHint    string
		anomalyHint string
		want        models.RiskTier
	}{
		{"quiet afternoon, zero base", zeroBase, 14, "", "", models.RiskLow},
		{"coordinate jitter alone reaches medium", daytime, 14, "", "", models.RiskMedium},
		{"night pushes zero base to medium", zeroBase, 23, "", "", models.RiskMedium},
		{"night plus distress voice is high", zeroBase, 2, "", HintDistressVoice, models.RiskHigh},
		{"unsafe driving alone stays low", zeroBase, 14, "", HintUnsafeDriving, models.RiskLow},
		{"base high hint alone is medium", zeroBase, 14, HintBaseHigh, "", models.RiskMedium},
		{"base high at night is high", zeroBase, 21, HintBaseHigh, "", models.RiskHigh},
		{"base low suppresses coordinate jitter", daytime, 14, HintBaseLow, "", models.RiskLow},
		{"early morning counts as night", zeroBase, 5, "", HintDistressVoice, models.RiskHigh},
		{"six am is daytime", zeroBase, 6, "", HintDistressVoice, models.RiskMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngineWithClock(fixedClock(tt.hour), 1)
			if got := e.Assess(tt.coord, tt.baseHint, tt.anomalyHint); got != tt.want {
				t.Errorf("Assess() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAssessDeterminism(t *testing.T) {
	e := NewEngineWithClock(fixedClock(22), 42)
	c := models.Coordinate{Lat: 12.97, Lng: 77.59}

	first := e.Assess(c, HintBaseHigh, HintUnsafeDriving)
	for i := 0; i < 50; i++ {
		if got := e.Assess(c, HintBaseHigh, HintUnsafeDriving); got != first {
			t.Fatalf("call %d returned %s, first call returned %s", i, got, first)
		}
	}
}

func TestGuidanceFor(t *testing.T) {
	tests := []struct {
		tier   models.RiskTier
		action string
	}{
		{models.RiskHigh, models.ActionContactPolice},
		{models.RiskMedium, models.ActionMoveToSafeArea},
		{models.RiskLow, models.ActionMonitor},
	}

	for _, tt := range tests {
		text, action := GuidanceFor(tt.tier)
		if action != tt.action {
			t.Errorf("GuidanceFor(%s) action = %s, want %s", tt.tier, action, tt.action)
		}
		if text == "" {
			t.Errorf("GuidanceFor(%s) returned empty guidance text", tt.tier)
		}
	}
}

func TestSafeRouteContract(t *testing.T) {
	e := NewEngineWithClock(fixedClock(12), 7)
	c := models.Coordinate{Lat: 12.97, Lng: 77.59}

	if route := e.SafeRoute(c, models.RiskLow); len(route) != 0 {
		t.Errorf("low tier must yield empty route, got %d points", len(route))
	}

	for _, tier := range []models.RiskTier{models.RiskMedium, models.RiskHigh} {
		route := e.SafeRoute(c, tier)
		if len(route) != 4 {
			t.Fatalf("%s tier route has %d points, want 4", tier, len(route))
		}
		// Points stay within a tight envelope of the origin: deterministic
		// offsets up to ~0.005 degrees plus jitter bounded by 0.0005.
		for i, p := range route {
			if dLat := p.Lat - c.Lat; dLat < 0 || dLat > 0.006 {
				t.Errorf("point %d lat offset %.5f out of bounds", i, dLat)
			}
			if dLng := p.Lng - c.Lng; dLng < 0 || dLng > 0.006 {
				t.Errorf("point %d lng offset %.5f out of bounds", i, dLng)
			}
		}
	}
}

func TestNearestSupport(t *testing.T) {
	// Right on top of Victoria Hospital.
	at := models.Coordinate{Lat: 12.9609, Lng: 77.5754}
	got := NearestSupport(at)
	if got.Name != "Victoria Hospital" {
		t.Errorf("expected Victoria Hospital, got %s", got.Name)
	}
	if got.DistanceKM != 0 {
		t.Errorf("expected zero distance, got %.2f", got.DistanceKM)
	}
	if got.Category != "hospital" {
		t.Errorf("expected hospital category, got %s", got.Category)
	}
}

func TestEvaluateAssemblesAssessment(t *testing.T) {
	e := NewEngineWithClock(fixedClock(23), 3)
	c := models.Coordinate{Lat: 12.5, Lng: 77.5}

	a := e.Evaluate(c, HintBaseHigh, "")
	if a.Tier != models.RiskHigh {
		t.Fatalf("expected high tier, got %s", a.Tier)
	}
	if a.RecommendedAction != models.ActionContactPolice {
		t.Errorf("expected contact_police, got %s", a.RecommendedAction)
	}
	if a.ReferenceLocation != c {
		t.Errorf("reference location mismatch: %+v", a.ReferenceLocation)
	}
	if len(a.SafeRoute) != 4 {
		t.Errorf("expected 4-point safe route, got %d", len(a.SafeRoute))
	}
	if a.NearestSupport.Name == "" {
		t.Error("nearest support not populated")
	}
}
