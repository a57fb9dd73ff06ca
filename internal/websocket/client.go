// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package websocket

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/raksha-net/relay/internal/logging"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// clientIDCounter hands out monotonically increasing IDs so broadcast
// passes can iterate subscribers in a stable order.
var clientIDCounter atomic.Uint64

// Client is the middleman between one dashboard connection and the hub.
// Each client owns a buffered send channel; the hub never writes to the
// socket directly. The pong channel belongs to the client alone and is
// never closed, so a reply queued after the hub has evicted the client
// cannot panic on a closed send channel.
type Client struct {
	id   uint64
	hub  *Hub
	conn *websocket.Conn
	send chan Message
	pong chan struct{}
}

// NewClient creates a client for an upgraded connection. The send buffer
// size comes from the hub's configuration.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		id:   clientIDCounter.Add(1),
		hub:  hub,
		conn: conn,
		send: make(chan Message, hub.clientBuffer),
		pong: make(chan struct{}, 1),
	}
}

// ID returns the client's unique identifier.
func (c *Client) ID() uint64 {
	return c.id
}

// readPump consumes frames from the socket until it errors or closes,
// then unregisters the client. Subscribers send no application traffic
// after the handshake; the pump exists to service pong frames and to
// notice disconnects.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Error().Err(err).Msg("unexpected websocket close error")
			}
			break
		}

		// Application-level ping from older dashboard builds.
		if msg.Type == MessageTypePing {
			c.replyPing()
		}
	}
}

// writePump pushes hub messages to the socket and keeps the connection
// alive with protocol pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logging.Error().Err(err).Msg("failed to set write deadline")
				return
			}
			if !ok {
				// Hub closed the channel.
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				logging.Error().Err(err).Msg("failed to write alert frame")
				return
			}

		case <-c.pong:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteJSON(Message{Type: MessageTypePong}); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// replyPing queues one application-level pong. The reply goes through the
// client-owned pong channel rather than the hub-owned send channel, so it
// stays safe even if the hub has already closed send during an eviction.
// At most one pong is pending at a time; extra pings are coalesced.
func (c *Client) replyPing() {
	select {
	case c.pong <- struct{}{}:
	default:
	}
}

// Start begins the client's read and write pumps.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
