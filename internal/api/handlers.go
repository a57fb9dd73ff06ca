// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raksha-net/relay/internal/alert"
	"github.com/raksha-net/relay/internal/config"
	"github.com/raksha-net/relay/internal/escalation"
	"github.com/raksha-net/relay/internal/logging"
	"github.com/raksha-net/relay/internal/risk"
	"github.com/raksha-net/relay/internal/store"
	ws "github.com/raksha-net/relay/internal/websocket"
)

// Handler carries the dependencies for all API handlers.
//
// Handler methods are split across files:
//   - handlers.go: struct, constructor, websocket upgrade (this file)
//   - handlers_helpers.go: shared respond/param helpers
//   - handlers_alerts.go: panic, anomaly, escalate
//   - handlers_info.go: explanation, guidance, recent alerts, health
//   - handlers_simulate.go: demo/simulation triggers
type Handler struct {
	locations  *store.LocationStore
	alertLog   *store.AlertLog
	pipeline   *alert.Pipeline
	engine     *risk.Engine
	dispatcher *escalation.Dispatcher
	wsHub      *ws.Hub
	config     *config.Config
	startTime  time.Time
}

// NewHandler creates an API handler over the shared stores and services.
// The stores are owned by the caller and passed by reference; handlers
// never construct shared state of their own.
func NewHandler(
	locations *store.LocationStore,
	alertLog *store.AlertLog,
	pipeline *alert.Pipeline,
	engine *risk.Engine,
	dispatcher *escalation.Dispatcher,
	wsHub *ws.Hub,
	cfg *config.Config,
) *Handler {
	return &Handler{
		locations:  locations,
		alertLog:   alertLog,
		pipeline:   pipeline,
		engine:     engine,
		dispatcher: dispatcher,
		wsHub:      wsHub,
		config:     cfg,
		startTime:  time.Now(),
	}
}

// getUpgrader creates a websocket upgrader with origin checking and a
// handshake timeout against slow-client attacks.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin validates the Origin header against the configured
// CORS origins. Enforcement is opt-in: dashboards connect from panic
// buttons, kiosks and scripts that send no Origin header at all, so the
// default accepts every upgrade.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	if h.config == nil || !h.config.Websocket.CheckOrigin {
		return true
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		logging.Warn().Msg("websocket connection rejected: missing Origin header")
		return false
	}

	for _, allowed := range h.config.Security.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("websocket connection rejected from unauthorized origin")
	return false
}

// WebSocket upgrades the connection and registers it with the hub. The
// subscriber then receives every alert the pipeline completes until it
// disconnects or the server shuts down.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("websocket connection rejected: hub not initialized")
		respondError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "websocket service unavailable", ErrHubUnavailable)
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error().Err(err).Msg("websocket upgrade error")
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	h.wsHub.Register <- client
	client.Start()
}
