// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

// Package websocket implements the subscriber registry: the set of
// connected dashboard clients and the broadcast fanout that pushes alert
// records to all of them.
//
// The channel is write-only from the server's perspective in steady
// state; subscribers send nothing after the handshake except pong frames.
// Liveness is detected with a ping/pong heartbeat, never busy-polling.
package websocket

import (
	"context"
	"sort"
	"sync"

	"github.com/raksha-net/relay/internal/logging"
	"github.com/raksha-net/relay/internal/metrics"
	"github.com/raksha-net/relay/internal/models"
)

// Message types pushed over the subscriber channel.
const (
	MessageTypeAlert = "alert"
	MessageTypePing  = "ping"
	MessageTypePong  = "pong"
)

// Message is one frame on the subscriber channel.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Buffer sizes used when HubConfig leaves a field unset.
const (
	defaultBroadcastBuffer = 256
	defaultClientBuffer    = 64
)

// HubConfig sizes the hub's internal buffers. Zero or negative values
// fall back to the defaults.
type HubConfig struct {
	// BroadcastBuffer is the depth of the shared broadcast queue.
	BroadcastBuffer int
	// ClientBuffer is the per-subscriber send queue depth; a subscriber
	// whose queue overflows during a broadcast pass is evicted.
	ClientBuffer int
}

// Hub owns the set of active subscribers and broadcasts alert payloads to
// them. Registration, removal, and broadcast all funnel through the run
// loop's channels, so the subscriber set is mutated from one goroutine
// only; broadcast iterates a sorted snapshot of that set.
type Hub struct {
	clients      map[*Client]bool
	broadcast    chan Message
	Register     chan *Client
	Unregister   chan *Client
	clientBuffer int
	mu           sync.RWMutex
}

// NewHub creates a hub with no subscribers and default buffer sizes.
func NewHub() *Hub {
	return NewHubWithConfig(HubConfig{})
}

// NewHubWithConfig creates a hub sized per the given configuration.
func NewHubWithConfig(cfg HubConfig) *Hub {
	if cfg.BroadcastBuffer <= 0 {
		cfg.BroadcastBuffer = defaultBroadcastBuffer
	}
	if cfg.ClientBuffer <= 0 {
		cfg.ClientBuffer = defaultClientBuffer
	}
	return &Hub{
		broadcast:    make(chan Message, cfg.BroadcastBuffer),
		Register:     make(chan *Client),
		Unregister:   make(chan *Client),
		clients:      make(map[*Client]bool),
		clientBuffer: cfg.ClientBuffer,
	}
}

// RunWithContext runs the hub until the context is canceled, then closes
// every remaining subscriber exactly once and returns ctx.Err(). Designed
// for suture supervision.
//
// Selection is priority-ordered so behavior stays predictable when
// multiple channels are ready: shutdown first, then client lifecycle,
// then broadcasts.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		default:
		}

		// Lifecycle events win over pending broadcasts so the subscriber
		// set is consistent before the next fanout pass.
		select {
		case client := <-h.Register:
			h.addClient(client)
			continue
		case client := <-h.Unregister:
			h.removeClient(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.shutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.addClient(client)
		case client := <-h.Unregister:
			h.removeClient(client)
		case message := <-h.broadcast:
			h.broadcastToClients(message)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	metrics.WebSocketClients.Set(float64(total))
	logging.Info().Int("total_clients", total).Msg("dashboard subscriber connected")
}

// removeClient is idempotent: removing an absent subscriber is a no-op.
// Both the read-pump cleanup and a failed-broadcast eviction may race to
// remove the same client; whichever loses finds it already gone.
func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	removed := false
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
		removed = true
	}
	total := len(h.clients)
	h.mu.Unlock()

	if removed {
		metrics.WebSocketClients.Set(float64(total))
		logging.Info().Int("total_clients", total).Msg("dashboard subscriber disconnected")
	}
}

// broadcastToClients delivers a message to a stable snapshot of the
// subscriber set, sorted by client ID for deterministic delivery order.
// A subscriber whose send buffer is full or closed is marked dead and
// removed after the pass completes; its failure never aborts delivery to
// the others and never surfaces to the broadcast caller.
func (h *Hub) broadcastToClients(message Message) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})

	var toRemove []*Client
	for _, client := range clients {
		select {
		case client.send <- message:
			metrics.BroadcastsDelivered.Inc()
		default:
			toRemove = append(toRemove, client)
		}
	}

	for _, client := range toRemove {
		close(client.send)
		delete(h.clients, client)
		metrics.BroadcastsDropped.Inc()
		logging.Warn().Uint64("client_id", client.id).Msg("evicted dead subscriber during broadcast")
	}
	if len(toRemove) > 0 {
		metrics.WebSocketClients.Set(float64(len(h.clients)))
	}
}

// shutdown closes all subscribers in ID order and logs the reason.
func (h *Hub) shutdown(ctx context.Context) {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	for _, client := range clients {
		close(client.send)
		delete(h.clients, client)
	}
	h.mu.Unlock()

	metrics.WebSocketClients.Set(0)

	reason := "context_canceled"
	if ctx.Err() == context.DeadlineExceeded {
		reason = "context_deadline"
	}
	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", reason).
		Int("clients_closed", len(clients)).
		Msg("websocket hub stopped")
}

// BroadcastAlert queues an alert record for fanout to all subscribers.
// If the broadcast queue is full the message is dropped with a warning;
// callers are never blocked and never see an error.
func (h *Hub) BroadcastAlert(record *models.AlertRecord) {
	message := Message{
		Type: MessageTypeAlert,
		Data: record,
	}

	select {
	case h.broadcast <- message:
	default:
		logging.Warn().Str("alert_id", record.ID).Msg("broadcast queue full, dropping alert push")
	}
}

// ClientCount returns the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
