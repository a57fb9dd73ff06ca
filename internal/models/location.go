// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// UnknownLocationSentinel is the wire value emitted for an alert whose
// location could not be resolved.
const UnknownLocationSentinel = "unknown"

// VehicleID is an opaque vehicle identifier ("Bus #9", fleet asset tags).
type VehicleID string

// Coordinate is an immutable latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LocationKind discriminates the Location variant.
type LocationKind int

const (
	// LocationUnknown means no usable location information.
	LocationUnknown LocationKind = iota
	// LocationNamed is a human-readable place alias ("Majestic Bus Stand")
	// awaiting gazetteer resolution.
	LocationNamed
	// LocationPoint is a concrete coordinate.
	LocationPoint
)

// Location is a tagged variant over the dynamic "location" field accepted
// from clients: a named place alias, a concrete coordinate, or unknown.
// It is resolved to a point (or the unknown sentinel) exactly once at
// pipeline entry; downstream code never sees the raw dynamic value.
type Location struct {
	kind  LocationKind
	name  string
	point Coordinate
}

// UnknownLocation returns the unknown variant.
func UnknownLocation() Location {
	return Location{kind: LocationUnknown}
}

// NamedLocation returns a named-alias variant.
func NamedLocation(name string) Location {
	if name == "" || name == UnknownLocationSentinel {
		return UnknownLocation()
	}
	return Location{kind: LocationNamed, name: name}
}

// PointLocation returns a concrete-coordinate variant.
func PointLocation(c Coordinate) Location {
	return Location{kind: LocationPoint, point: c}
}

// Kind returns the variant discriminator.
func (l Location) Kind() LocationKind { return l.kind }

// IsUnknown reports whether no usable location is present.
func (l Location) IsUnknown() bool { return l.kind == LocationUnknown }

// Name returns the place alias when the variant is named.
func (l Location) Name() (string, bool) {
	return l.name, l.kind == LocationNamed
}

// Point returns the coordinate when the variant is a concrete point.
func (l Location) Point() (Coordinate, bool) {
	return l.point, l.kind == LocationPoint
}

// MarshalJSON emits a coordinate object for points, the "unknown" sentinel
// string otherwise. Named aliases never survive to output: the pipeline
// resolves them before an alert record is built, so serializing one means
// resolution was skipped and the sentinel is the honest answer.
func (l Location) MarshalJSON() ([]byte, error) {
	if l.kind == LocationPoint {
		return json.Marshal(l.point)
	}
	return json.Marshal(UnknownLocationSentinel)
}

// UnmarshalJSON accepts the permissive inbound forms: a {lat,lng} object,
// a place-alias string, the "unknown" sentinel, or null. An object missing
// either component degrades to unknown rather than erroring, per the
// permissive-input policy.
func (l *Location) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = UnknownLocation()
		return nil
	}

	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*l = NamedLocation(name)
		return nil
	}

	var raw struct {
		Lat *float64 `json:"lat"`
		Lng *float64 `json:"lng"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("location must be a string or {lat,lng} object: %w", err)
	}
	if raw.Lat == nil || raw.Lng == nil {
		*l = UnknownLocation()
		return nil
	}
	*l = PointLocation(Coordinate{Lat: *raw.Lat, Lng: *raw.Lng})
	return nil
}

// String implements fmt.Stringer for logging.
func (l Location) String() string {
	switch l.kind {
	case LocationNamed:
		return l.name
	case LocationPoint:
		return fmt.Sprintf("(%.4f,%.4f)", l.point.Lat, l.point.Lng)
	default:
		return UnknownLocationSentinel
	}
}
