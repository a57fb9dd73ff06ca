// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package escalation maps anomaly categories to ordered notification tiers
// and dispatches (stubbed) notifications to caller-supplied contacts.
package escalation

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/raksha-net/relay/internal/logging"
)

// Notification tiers, ordered from closest to the passenger outward.
const (
	TierFamily = "family"
	TierFleet  = "fleet"
	TierPolice = "police"
)

// LevelsFor returns the ordered notification tiers for an anomaly type.
// Unknown types fall back to [family]; that is the documented default,
// not an error.
func LevelsFor(anomalyType string) []string {
	switch anomalyType {
	case "distress_voice":
		return []string{TierFamily, TierFleet, TierPolice}
	case "route_deviation":
		return []string{TierFamily, TierFleet}
	case "unsafe_driving":
		return []string{TierFleet}
	default:
		return []string{TierFamily}
	}
}

// Notifier delivers an escalation to a set of contacts and reports which
// were reached. Production deployments plug in paging/SMS gateways here.
type Notifier interface {
	Notify(contacts []string, levels []string) ([]string, error)
}

// stubNotifier echoes the contacts back unfiltered. No real-world
// notification is sent.
type stubNotifier struct{}

func (stubNotifier) Notify(contacts []string, _ []string) ([]string, error) {
	if contacts == nil {
		return []string{}, nil
	}
	return contacts, nil
}

// Result is the outcome of one escalation dispatch.
type Result struct {
	ID       string
	Levels   []string
	Notified []string
}

// Dispatcher runs escalations through a circuit breaker around the
// notifier. Delivery failures trip the breaker and are absorbed: the
// caller always gets a correlation ID and the tier plan, with an empty
// notified list when delivery was skipped.
type Dispatcher struct {
	notifier Notifier
	breaker  *gobreaker.CircuitBreaker[[]string]
}

// NewDispatcher creates a dispatcher around the given notifier.
// A nil notifier gets the echo stub.
func NewDispatcher(notifier Notifier) *Dispatcher {
	if notifier == nil {
		notifier = stubNotifier{}
	}

	settings := gobreaker.Settings{
		Name:        "escalation-notifier",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("escalation breaker state change")
		},
	}

	return &Dispatcher{
		notifier: notifier,
		breaker:  gobreaker.NewCircuitBreaker[[]string](settings),
	}
}

// Dispatch plans the notification tiers for the anomaly type and pushes
// the escalation through the notifier. Failures are logged and absorbed;
// no escalation ever surfaces a delivery error to the HTTP caller.
func (d *Dispatcher) Dispatch(anomalyType string, contacts []string) Result {
	levels := LevelsFor(anomalyType)
	id := NewEscalationID()

	notified, err := d.breaker.Execute(func() ([]string, error) {
		return d.notifier.Notify(contacts, levels)
	})
	if err != nil {
		logging.Warn().
			Err(err).
			Str("escalation_id", id).
			Str("anomaly_type", anomalyType).
			Msg("escalation delivery skipped")
		notified = []string{}
	}

	return Result{ID: id, Levels: levels, Notified: notified}
}

// NewEscalationID generates a short opaque correlation token. Uniqueness
// and the prefix are the only contract.
func NewEscalationID() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return "ESC-" + hex.EncodeToString(buf)
}
