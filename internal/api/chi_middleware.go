// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/raksha-net/relay/internal/config"
)

// ChiMiddlewareConfig holds configuration for the chi middleware
// factories.
type ChiMiddlewareConfig struct {
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	CORSMaxAge         int // seconds

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
}

// DefaultChiMiddlewareConfig returns the relay's default middleware
// settings. Origins default to wildcard: the relay carries no
// credentials and dashboards are served from arbitrary origins.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{"*"},
		CORSAllowedMethods: []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		CORSMaxAge:         86400,

		RateLimitRequests: 300,
		RateLimitWindow:   time.Minute,
	}
}

// MiddlewareConfigFromApp derives the middleware settings from the
// application config.
func MiddlewareConfigFromApp(cfg *config.Config) *ChiMiddlewareConfig {
	mw := DefaultChiMiddlewareConfig()
	if cfg == nil {
		return mw
	}
	if len(cfg.Security.CORSOrigins) > 0 {
		mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	}
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return mw
}

// ChiMiddleware provides chi-compatible middleware factories backed by
// go-chi/cors and go-chi/httprate.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates a middleware factory with the given
// configuration, or defaults when nil.
func NewChiMiddleware(config *ChiMiddlewareConfig) *ChiMiddleware {
	if config == nil {
		config = DefaultChiMiddlewareConfig()
	}

	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: config.CORSAllowedOrigins,
		AllowedMethods: config.CORSAllowedMethods,
		AllowedHeaders: config.CORSAllowedHeaders,
		MaxAge:         config.CORSMaxAge,
	})

	return &ChiMiddleware{
		config: config,
		cors:   corsHandler,
	}
}

// CORS returns the global CORS middleware.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit returns the per-IP rate limiting middleware for the alert
// endpoints, or a no-op when disabled.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.LimitByIP(m.config.RateLimitRequests, m.config.RateLimitWindow)
}

// RateLimitHealth returns a permissive rate limit for the health probes,
// sized for aggressive monitoring intervals.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.LimitByIP(1000, time.Minute)
}
