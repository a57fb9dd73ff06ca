// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package risk computes the coarse risk tier and guidance payload that
// enrich alerts. Tier computation is deterministic for a fixed coordinate,
// hour of day, and hints; only the illustrative safe-route points carry
// bounded random jitter.
package risk

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/raksha-net/relay/internal/geo"
	"github.com/raksha-net/relay/internal/models"
)

// Contextual hints accepted by Assess.
const (
	HintBaseHigh = "high"
	HintBaseLow  = "low"

	HintDistressVoice = "distress_voice"
	HintUnsafeDriving = "unsafe_driving"
)

// supportPoints is the static point-of-interest table scanned by
// NearestSupport. Coordinates sit in the same metro area as the gazetteer.
var supportPoints = []struct {
	name     string
	category string
	at       models.Coordinate
}{
	{"Upparpet Police Station", "police", models.Coordinate{Lat: 12.9757, Lng: 77.5750}},
	{"Victoria Hospital", "hospital", models.Coordinate{Lat: 12.9609, Lng: 77.5754}},
	{"Indiranagar Police Station", "police", models.Coordinate{Lat: 12.9719, Lng: 77.6412}},
	{"Manipal Hospital Old Airport Road", "hospital", models.Coordinate{Lat: 12.9592, Lng: 77.6974}},
	{"HSR Layout Fuel Stop", "fuel", models.Coordinate{Lat: 12.9116, Lng: 77.6450}},
	{"Hebbal Traffic Outpost", "police", models.Coordinate{Lat: 13.0382, Lng: 77.5919}},
}

// Engine computes risk tiers and guidance. The clock is injectable so the
// hour-of-day term is testable; the jitter source is guarded for
// concurrent use from request handlers.
type Engine struct {
	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine creates an engine using the wall clock.
func NewEngine() *Engine {
	return NewEngineWithClock(time.Now, time.Now().UnixNano())
}

// NewEngineWithClock creates an engine with a fixed clock and jitter seed.
func NewEngineWithClock(now func() time.Time, seed int64) *Engine {
	return &Engine{
		now: now,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Assess computes the risk tier for a coordinate plus contextual hints.
//
// The score starts from (|lat|+|lng|) mod 3, a coordinate-dependent
// jitter term rather than a real geospatial signal. It is a heuristic
// placeholder kept for behavioral parity with the source system.
func (e *Engine) Assess(c models.Coordinate, baseHint, anomalyHint string) models.RiskTier {
	score := math.Mod(math.Abs(c.Lat)+math.Abs(c.Lng), 3)

	// Night hours carry extra weight.
	hour := e.now().UTC().Hour()
	if hour >= 21 || hour <= 5 {
		score += 2
	}

	switch anomalyHint {
	case HintDistressVoice:
		score += 2
	case HintUnsafeDriving:
		score++
	}

	switch baseHint {
	case HintBaseHigh:
		score += 2
	case HintBaseLow:
		score--
	}

	switch {
	case score >= 4:
		return models.RiskHigh
	case score >= 2:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

// GuidanceFor returns the fixed guidance text and recommended action for
// a tier.
func GuidanceFor(tier models.RiskTier) (text, action string) {
	switch tier {
	case models.RiskHigh:
		return "High risk detected. Contact police immediately and share your live location.", models.ActionContactPolice
	case models.RiskMedium:
		return "Elevated risk. Move to a well-lit public area and stay with the vehicle.", models.ActionMoveToSafeArea
	default:
		return "No elevated risk detected. Continue monitoring.", models.ActionMonitor
	}
}

// NearestSupport returns the closest point of interest by planar distance.
func NearestSupport(c models.Coordinate) models.SupportPoint {
	best := supportPoints[0]
	bestDist := geo.DistanceKM(c, best.at)
	for _, p := range supportPoints[1:] {
		if d := geo.DistanceKM(c, p.at); d < bestDist {
			best, bestDist = p, d
		}
	}
	return models.SupportPoint{
		Name:       best.name,
		Category:   best.category,
		DistanceKM: math.Round(bestDist*100) / 100,
	}
}

// SafeRoute produces a 4-point illustrative path away from the coordinate
// when the tier is not low, and an empty slice when it is. The empty-when-
// low contract is part of the API; the points themselves are placeholder
// path generation, not navigation.
func (e *Engine) SafeRoute(c models.Coordinate, tier models.RiskTier) []models.Coordinate {
	if tier == models.RiskLow {
		return []models.Coordinate{}
	}

	offsets := [4]models.Coordinate{
		{Lat: 0.0010, Lng: 0.0008},
		{Lat: 0.0022, Lng: 0.0013},
		{Lat: 0.0031, Lng: 0.0025},
		{Lat: 0.0045, Lng: 0.0032},
	}

	route := make([]models.Coordinate, 0, len(offsets))
	for _, off := range offsets {
		route = append(route, models.Coordinate{
			Lat: c.Lat + off.Lat + e.jitter(),
			Lng: c.Lng + off.Lng + e.jitter(),
		})
	}
	return route
}

// jitter returns a bounded random offset in (-0.0005, 0.0005) degrees.
func (e *Engine) jitter() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return (e.rng.Float64() - 0.5) * 0.001
}

// Evaluate assembles the full assessment for a coordinate: tier, guidance,
// nearest support, and safe route.
func (e *Engine) Evaluate(c models.Coordinate, baseHint, anomalyHint string) models.RiskAssessment {
	tier := e.Assess(c, baseHint, anomalyHint)
	text, action := GuidanceFor(tier)

	return models.RiskAssessment{
		Tier:              tier,
		GuidanceText:      text,
		RecommendedAction: action,
		ReferenceLocation: c,
		NearestSupport:    NearestSupport(c),
		SafeRoute:         e.SafeRoute(c, tier),
	}
}
