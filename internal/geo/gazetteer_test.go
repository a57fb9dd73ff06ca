// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package geo

import (
	"math"
	"testing"

	"github.com/raksha-net/relay/internal/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		alias string
		want  bool
	}{
		{"exact match", "bangalore", true},
		{"mixed case", "Majestic Bus Stand", true},
		{"surrounding whitespace", "  whitefield  ", true},
		{"unknown place", "atlantis", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Resolve(tt.alias)
			if ok != tt.want {
				t.Errorf("Resolve(%q) found=%v, want %v", tt.alias, ok, tt.want)
			}
		})
	}
}

func TestDistanceKM(t *testing.T) {
	a := models.Coordinate{Lat: 12.0, Lng: 77.0}

	// One degree of latitude is exactly the fixed approximation.
	b := models.Coordinate{Lat: 13.0, Lng: 77.0}
	if got := DistanceKM(a, b); math.Abs(got-KMPerDegree) > 1e-9 {
		t.Errorf("one degree latitude: got %.4f km, want %.1f", got, KMPerDegree)
	}

	// Symmetric.
	if DistanceKM(a, b) != DistanceKM(b, a) {
		t.Error("distance is not symmetric")
	}

	// Zero for identical points.
	if got := DistanceKM(a, a); got != 0 {
		t.Errorf("distance to self: got %.4f, want 0", got)
	}
}
