// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package services

import (
	"context"
)

// ContextHub matches *websocket.Hub's RunWithContext method without
// importing the websocket package.
type ContextHub interface {
	RunWithContext(ctx context.Context) error
}

// HubService wraps the websocket hub as a supervised service. The hub's
// RunWithContext already follows the suture.Service pattern; the wrapper
// only supplies a stable name for lifecycle logging.
type HubService struct {
	hub  ContextHub
	name string
}

// NewHubService creates the hub service wrapper.
func NewHubService(hub ContextHub) *HubService {
	return &HubService{
		hub:  hub,
		name: "websocket-hub",
	}
}

// Serve implements suture.Service. Returns ctx.Err() on normal shutdown
// after every subscriber has been closed exactly once.
func (s *HubService) Serve(ctx context.Context) error {
	return s.hub.RunWithContext(ctx)
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *HubService) String() string {
	return s.name
}
