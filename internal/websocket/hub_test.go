// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package websocket

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/raksha-net/relay/internal/logging"
	"github.com/raksha-net/relay/internal/models"
)

//nolint:gochecknoinits // init ensures quiet logging for tests
func init() {
	logging.Init(logging.Config{Level: "error", Output: io.Discard})
}

// startHub runs a hub under a test-scoped context.
func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = hub.RunWithContext(ctx) }()
	time.Sleep(10 * time.Millisecond)
	return hub
}

// newTestClient builds a client without a real connection; only the send
// channel matters for hub behavior.
func newTestClient(hub *Hub, buffer int) *Client {
	return &Client{
		id:   clientIDCounter.Add(1),
		hub:  hub,
		send: make(chan Message, buffer),
		pong: make(chan struct{}, 1),
	}
}

func register(hub *Hub, c *Client) {
	hub.Register <- c
	waitFor(func() bool { return hub.ClientCount() > 0 })
}

func waitFor(cond func() bool) {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func testAlert(id string) *models.AlertRecord {
	return &models.AlertRecord{
		ID:        id,
		Kind:      models.AlertKindPanic,
		VehicleID: "Bus #9",
		Location:  models.PointLocation(models.Coordinate{Lat: 12.97, Lng: 77.59}),
		Message:   "test alert",
		Timestamp: time.Now().UTC(),
	}
}

func TestNewHub(t *testing.T) {
	hub := NewHub()
	if hub.clients == nil || hub.broadcast == nil || hub.Register == nil || hub.Unregister == nil {
		t.Fatal("hub channels not initialized")
	}
	if hub.ClientCount() != 0 {
		t.Errorf("new hub has %d clients, want 0", hub.ClientCount())
	}
}

func TestHubBufferSizing(t *testing.T) {
	tests := []struct {
		name          string
		cfg           HubConfig
		wantBroadcast int
		wantClient    int
	}{
		{"configured sizes", HubConfig{BroadcastBuffer: 8, ClientBuffer: 3}, 8, 3},
		{"zero falls back to defaults", HubConfig{}, defaultBroadcastBuffer, defaultClientBuffer},
		{"negative falls back to defaults", HubConfig{BroadcastBuffer: -1, ClientBuffer: -1}, defaultBroadcastBuffer, defaultClientBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := NewHubWithConfig(tt.cfg)
			if got := cap(hub.broadcast); got != tt.wantBroadcast {
				t.Errorf("broadcast buffer cap = %d, want %d", got, tt.wantBroadcast)
			}
			c := NewClient(hub, nil)
			if got := cap(c.send); got != tt.wantClient {
				t.Errorf("client send buffer cap = %d, want %d", got, tt.wantClient)
			}
		})
	}
}

func TestReplyPingSafeAfterEviction(t *testing.T) {
	hub := startHub(t)

	// Zero-buffer send channel: the first broadcast pass evicts it and
	// closes send.
	c := newTestClient(hub, 0)
	register(hub, c)
	hub.BroadcastAlert(testAlert("ALERT-4"))
	waitFor(func() bool { return hub.ClientCount() == 0 })

	if _, open := <-c.send; open {
		t.Fatal("expected send channel closed after eviction")
	}

	// A late application-level ping must not panic on the closed send
	// channel; replies travel the client-owned pong channel instead.
	c.replyPing()
	c.replyPing()

	select {
	case <-c.pong:
	default:
		t.Error("expected one coalesced pong reply queued")
	}
	if len(c.pong) != 0 {
		t.Errorf("expected pong replies coalesced to one, %d left", len(c.pong))
	}
}

func TestRegisterAndUnregister(t *testing.T) {
	hub := startHub(t)
	c := newTestClient(hub, 8)

	register(hub, c)
	if hub.ClientCount() != 1 {
		t.Fatalf("expected 1 client, got %d", hub.ClientCount())
	}

	hub.Unregister <- c
	waitFor(func() bool { return hub.ClientCount() == 0 })
	if hub.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unregister, got %d", hub.ClientCount())
	}
}

func TestUnregisterIsIdempotent(t *testing.T) {
	hub := startHub(t)
	a := newTestClient(hub, 8)
	b := newTestClient(hub, 8)
	never := newTestClient(hub, 8)

	register(hub, a)
	register(hub, b)
	waitFor(func() bool { return hub.ClientCount() == 2 })

	// Remove a twice, and remove a client that was never added.
	hub.Unregister <- a
	waitFor(func() bool { return hub.ClientCount() == 1 })
	hub.Unregister <- a
	hub.Unregister <- never
	time.Sleep(20 * time.Millisecond)

	if hub.ClientCount() != 1 {
		t.Fatalf("expected surviving client untouched, count=%d", hub.ClientCount())
	}

	// b still receives broadcasts.
	hub.BroadcastAlert(testAlert("ALERT-1"))
	select {
	case msg := <-b.send:
		if msg.Type != MessageTypeAlert {
			t.Errorf("unexpected message type %s", msg.Type)
		}
	case <-time.After(time.Second):
		t.Fatal("surviving client never received broadcast")
	}
}

func TestBroadcastReachesAllSubscribers(t *testing.T) {
	hub := startHub(t)

	clients := make([]*Client, 5)
	for i := range clients {
		clients[i] = newTestClient(hub, 8)
		hub.Register <- clients[i]
	}
	waitFor(func() bool { return hub.ClientCount() == 5 })

	hub.BroadcastAlert(testAlert("ALERT-2"))

	for i, c := range clients {
		select {
		case msg := <-c.send:
			record, ok := msg.Data.(*models.AlertRecord)
			if !ok {
				t.Fatalf("client %d: payload is not an alert record", i)
			}
			if record.ID != "ALERT-2" {
				t.Errorf("client %d: got alert %s", i, record.ID)
			}
		case <-time.After(time.Second):
			t.Fatalf("client %d never received broadcast", i)
		}
	}
}

func TestBroadcastIsolatesFailedSubscriber(t *testing.T) {
	hub := startHub(t)

	healthy := make([]*Client, 3)
	for i := range healthy {
		healthy[i] = newTestClient(hub, 8)
		hub.Register <- healthy[i]
	}
	// Zero-buffer send channel with no reader: delivery fails immediately.
	dead := newTestClient(hub, 0)
	hub.Register <- dead
	waitFor(func() bool { return hub.ClientCount() == 4 })

	hub.BroadcastAlert(testAlert("ALERT-3"))

	// The other three still get the payload.
	for i, c := range healthy {
		select {
		case <-c.send:
		case <-time.After(time.Second):
			t.Fatalf("healthy client %d starved by failed subscriber", i)
		}
	}

	// Exactly the dead subscriber is removed.
	waitFor(func() bool { return hub.ClientCount() == 3 })
	if hub.ClientCount() != 3 {
		t.Fatalf("expected dead subscriber evicted, count=%d", hub.ClientCount())
	}
}

func TestShutdownClosesAllClients(t *testing.T) {
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- hub.RunWithContext(ctx) }()
	time.Sleep(10 * time.Millisecond)

	c := newTestClient(hub, 8)
	register(hub, c)

	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("hub did not stop on context cancellation")
	}

	if hub.ClientCount() != 0 {
		t.Errorf("expected all clients closed on shutdown, count=%d", hub.ClientCount())
	}
	// Send channel must be closed exactly once.
	if _, open := <-c.send; open {
		t.Error("client send channel left open after shutdown")
	}
}
