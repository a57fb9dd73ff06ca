// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/raksha-net/relay/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to chi's
// func(http.Handler) http.Handler so it works with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router assembles the relay's HTTP surface.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router over the given handler and middleware
// factory. A nil factory gets defaults.
func NewRouter(handler *Handler, mw *ChiMiddleware) *Router {
	if mw == nil {
		mw = NewChiMiddleware(nil)
	}
	return &Router{handler: handler, chiMiddleware: mw}
}

// Setup configures all routes. Alert endpoints are mounted both under
// /api/v1 and at their bare paths, which is what existing panic-button
// firmware calls.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	r.Get("/", router.handler.Root)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Health probes get their own permissive rate limit so monitoring
	// never competes with alert traffic.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Get("/health", router.handler.Health)
		r.Get("/api/v1/health", router.handler.Health)
		r.Get("/api/v1/health/live", router.handler.HealthLive)
		r.Get("/api/v1/health/ready", router.handler.HealthReady)
	})

	// The websocket upgrade bypasses the Prometheus wrapper: the
	// connection is long-lived and would distort request duration.
	r.Get("/ws", router.handler.WebSocket)
	r.Get("/api/v1/ws", router.handler.WebSocket)

	// Alert and query endpoints.
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		for _, prefix := range []string{"", "/api/v1"} {
			r.Post(prefix+"/panic", router.handler.Panic)
			r.Post(prefix+"/anomaly", router.handler.Anomaly)
			r.Post(prefix+"/escalate", router.handler.Escalate)
			r.Get(prefix+"/explanation", router.handler.Explanation)
			r.Get(prefix+"/guidance", router.handler.Guidance)
			r.Get(prefix+"/alerts/recent", router.handler.RecentAlerts)
			r.Post(prefix+"/simulate/panic", router.handler.SimulatePanic)
			r.Post(prefix+"/simulate/burst", router.handler.SimulateBurst)
		}
	})

	return r
}
