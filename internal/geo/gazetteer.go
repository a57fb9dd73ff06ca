// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package geo provides the static gazetteer and the planar distance
// helpers shared by the risk engine and the alert pipeline.
package geo

import (
	"math"
	"strings"

	"github.com/raksha-net/relay/internal/models"
)

// KMPerDegree is the fixed degrees-to-kilometers approximation used for
// all distances. No great-circle correction: acceptable at the city scale
// the relay operates on, not globally valid.
const KMPerDegree = 111.0

// gazetteer maps lowercase place aliases reported by clients to
// coordinates. Keys are matched case-insensitively after trimming.
var gazetteer = map[string]models.Coordinate{
	"bengaluru":           {Lat: 12.9716, Lng: 77.5946},
	"bangalore":           {Lat: 12.9716, Lng: 77.5946},
	"majestic bus stand":  {Lat: 12.9767, Lng: 77.5713},
	"kempegowda airport":  {Lat: 13.1986, Lng: 77.7066},
	"electronic city":     {Lat: 12.8452, Lng: 77.6602},
	"whitefield":          {Lat: 12.9698, Lng: 77.7500},
	"yeshwanthpur":        {Lat: 13.0280, Lng: 77.5403},
	"silk board junction": {Lat: 12.9172, Lng: 77.6229},
	"hebbal":              {Lat: 13.0358, Lng: 77.5970},
	"koramangala":         {Lat: 12.9352, Lng: 77.6245},
}

// Resolve looks up a place alias and returns its coordinate.
func Resolve(name string) (models.Coordinate, bool) {
	c, ok := gazetteer[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// DistanceKM returns the planar Euclidean distance between two coordinates
// in kilometers, using the fixed KMPerDegree approximation.
func DistanceKM(a, b models.Coordinate) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return math.Sqrt(dLat*dLat+dLng*dLng) * KMPerDegree
}
