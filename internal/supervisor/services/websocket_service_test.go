// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package services

import (
	"context"
	"errors"
	"testing"
)

type stubHub struct {
	served bool
	err    error
}

func (s *stubHub) RunWithContext(ctx context.Context) error {
	s.served = true
	if s.err != nil {
		return s.err
	}
	<-ctx.Done()
	return ctx.Err()
}

func TestHubServiceDelegates(t *testing.T) {
	hub := &stubHub{}
	svc := NewHubService(hub)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Serve(ctx)
	if !hub.served {
		t.Error("hub RunWithContext not invoked")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v", err)
	}
}

func TestHubServiceSurfacesFailure(t *testing.T) {
	hub := &stubHub{err: errors.New("hub crashed")}
	svc := NewHubService(hub)

	if err := svc.Serve(context.Background()); !errors.Is(err, hub.err) {
		t.Errorf("err = %v, want hub failure for supervisor restart", err)
	}
}

func TestHubServiceName(t *testing.T) {
	if got := NewHubService(&stubHub{}).String(); got != "websocket-hub" {
		t.Errorf("name = %q", got)
	}
}
