// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Command server runs the relay: alert ingestion over HTTP, risk and
// escalation guidance, and live websocket fanout to dashboards, all
// under a suture supervision tree.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/raksha-net/relay/internal/alert"
	"github.com/raksha-net/relay/internal/api"
	"github.com/raksha-net/relay/internal/config"
	"github.com/raksha-net/relay/internal/escalation"
	"github.com/raksha-net/relay/internal/logging"
	"github.com/raksha-net/relay/internal/risk"
	"github.com/raksha-net/relay/internal/store"
	"github.com/raksha-net/relay/internal/supervisor"
	"github.com/raksha-net/relay/internal/supervisor/services"
	ws "github.com/raksha-net/relay/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Int("alert_log_capacity", cfg.Alerts.LogCapacity).
		Msg("starting raksha relay")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Shared stores, owned here and injected everywhere. Never globals.
	locations := store.NewLocationStore()
	alertLog := store.NewAlertLog(cfg.Alerts.LogCapacity)
	hub := ws.NewHubWithConfig(ws.HubConfig{
		BroadcastBuffer: cfg.Websocket.BroadcastBuffer,
		ClientBuffer:    cfg.Websocket.ClientBuffer,
	})

	pipeline := alert.NewPipeline(locations, alertLog, hub)
	engine := risk.NewEngine()
	dispatcher := escalation.NewDispatcher(nil)

	handler := api.NewHandler(locations, alertLog, pipeline, engine, dispatcher, hub, cfg)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.MiddlewareConfigFromApp(cfg)))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Supervision: the hub and the HTTP server restart independently.
	// Suture events flow through the zerolog slog bridge.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMessagingService(services.NewHubService(hub))
	tree.AddAPIService(services.NewHTTPService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("service failed to stop within timeout")
	}

	logging.Info().Msg("relay stopped gracefully")
}
