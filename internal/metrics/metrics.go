// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package metrics exposes the relay's Prometheus instrumentation:
// API latency/throughput, alert ingestion, websocket fanout, and
// escalation dispatch.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Alert pipeline metrics
	AlertsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_alerts_ingested_total",
			Help: "Total number of alerts ingested, by kind",
		},
		[]string{"kind"},
	)

	AlertLogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_alert_log_size",
			Help: "Current number of records in the alert log",
		},
	)

	// WebSocket fanout metrics
	WebSocketClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "relay_websocket_clients",
			Help: "Current number of connected dashboard subscribers",
		},
	)

	BroadcastsDelivered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_broadcasts_delivered_total",
			Help: "Total number of per-subscriber alert deliveries",
		},
	)

	BroadcastsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_broadcasts_dropped_total",
			Help: "Total number of deliveries dropped due to dead or slow subscribers",
		},
	)

	// Escalation metrics
	EscalationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_escalations_dispatched_total",
			Help: "Total number of escalation dispatches, by anomaly type",
		},
		[]string{"anomaly_type"},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
