// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package store

import (
	"sync"

	"github.com/raksha-net/relay/internal/models"
)

// LocationStore maps vehicle IDs to their last-known coordinate.
//
// Updates are unconditional last-write-wins with no timestamp comparison:
// a stale out-of-order event can overwrite a newer fix. This is a known
// simplification carried from the source system; downstream behavior
// depends on it, so it is preserved rather than fixed.
type LocationStore struct {
	mu        sync.RWMutex
	locations map[models.VehicleID]models.Coordinate
}

// NewLocationStore creates an empty location store.
func NewLocationStore() *LocationStore {
	return &LocationStore{
		locations: make(map[models.VehicleID]models.Coordinate),
	}
}

// Update records the coordinate as the vehicle's last-known location.
// The unknown sentinel is never stored; callers pass only concrete points.
func (s *LocationStore) Update(id models.VehicleID, c models.Coordinate) {
	if id == "" {
		return
	}
	s.mu.Lock()
	s.locations[id] = c
	s.mu.Unlock()
}

// Lookup returns the last-known coordinate for the vehicle, if any.
func (s *LocationStore) Lookup(id models.VehicleID) (models.Coordinate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.locations[id]
	return c, ok
}

// Len returns the number of vehicles with a known location.
func (s *LocationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.locations)
}
