// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

// mockServer implements HTTPServer for tests. ListenAndServe blocks
// until Shutdown releases it, like the real server.
type mockServer struct {
	listenErr error
	release   chan struct{}
	shutdowns int
}

func newMockServer() *mockServer {
	return &mockServer{release: make(chan struct{})}
}

func (m *mockServer) ListenAndServe() error {
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.release
	return http.ErrServerClosed
}

func (m *mockServer) Shutdown(ctx context.Context) error {
	m.shutdowns++
	close(m.release)
	return nil
}

func TestHTTPServiceGracefulShutdown(t *testing.T) {
	server := newMockServer()
	svc := NewHTTPService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop after context cancel")
	}

	if server.shutdowns != 1 {
		t.Errorf("shutdowns = %d, want 1", server.shutdowns)
	}
}

func TestHTTPServiceListenFailure(t *testing.T) {
	server := newMockServer()
	server.listenErr = errors.New("bind: address already in use")

	svc := NewHTTPService(server, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, server.listenErr) {
		t.Errorf("err = %v, want wrapped listen failure", err)
	}
}

func TestHTTPServiceName(t *testing.T) {
	svc := NewHTTPService(newMockServer(), 0)
	if svc.String() != "http-server" {
		t.Errorf("name = %q", svc.String())
	}
}
