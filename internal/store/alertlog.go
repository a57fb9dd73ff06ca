// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package store

import (
	"sync"

	"github.com/raksha-net/relay/internal/models"
)

const (
	// DefaultAlertLogCapacity bounds the in-memory alert history.
	DefaultAlertLogCapacity = 200

	// maxRecentLimit caps how many records Recent returns per call.
	maxRecentLimit = 100
)

// AlertLog is a capacity-bounded, insertion-ordered history of alert
// records. When full, appending evicts the oldest record first. Eviction
// and append happen under one lock so the capacity invariant holds under
// concurrent appends.
//
// The log never triggers broadcasts; log pressure must not be able to
// drop a live notification, so recording and fanout stay decoupled.
type AlertLog struct {
	mu       sync.RWMutex
	records  []models.AlertRecord
	capacity int
}

// NewAlertLog creates an alert log with the given capacity.
// Non-positive capacities fall back to DefaultAlertLogCapacity.
func NewAlertLog(capacity int) *AlertLog {
	if capacity <= 0 {
		capacity = DefaultAlertLogCapacity
	}
	return &AlertLog{
		records:  make([]models.AlertRecord, 0, capacity),
		capacity: capacity,
	}
}

// Append adds the record to the tail, evicting from the head when the log
// is at capacity. Records are immutable once appended.
func (l *AlertLog) Append(record models.AlertRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
	if len(l.records) > l.capacity {
		overflow := len(l.records) - l.capacity
		l.records = append(l.records[:0], l.records[overflow:]...)
	}
}

// Recent returns up to limit records, most recent first. The limit is
// clamped to [1,100] so every caller observes the same bound.
func (l *AlertLog) Recent(limit int) []models.AlertRecord {
	if limit < 1 {
		limit = 1
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if limit > len(l.records) {
		limit = len(l.records)
	}

	out := make([]models.AlertRecord, limit)
	for i := 0; i < limit; i++ {
		out[i] = l.records[len(l.records)-1-i]
	}
	return out
}

// Len returns the current number of records.
func (l *AlertLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Capacity returns the configured bound.
func (l *AlertLog) Capacity() int {
	return l.capacity
}
