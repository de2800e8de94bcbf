// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stream

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ajroetker/go-grayscott/grayscott"
	"github.com/ajroetker/go-grayscott/hwy"
)

// DefaultWriteTimeout bounds a single frame write to a viewer.
const DefaultWriteTimeout = 10 * time.Second

// Hub is an http.Handler that upgrades requests to websockets and sends
// every broadcast frame to all connected clients. A client that connects
// late first receives the most recent frame.
//
// Broadcast never waits on the network. Each client has its own writer
// goroutine and a one-frame mailbox; a client that falls behind skips to the
// newest frame, and one whose write exceeds the write timeout is dropped.
type Hub struct {
	log          *slog.Logger
	upgrader     websocket.Upgrader
	writeTimeout time.Duration

	mu      sync.Mutex
	clients map[*client]struct{}
	last    []byte
}

type client struct {
	conn *websocket.Conn
	send chan []byte // capacity 1, holds the newest unsent frame
	done chan struct{}
}

// offer queues frame, replacing a frame the writer has not picked up yet.
// Callers hold Hub.mu, so offers never race each other.
func (c *client) offer(frame []byte) {
	select {
	case c.send <- frame:
		return
	default:
	}
	select {
	case <-c.send:
	default:
	}
	c.send <- frame
}

// NewHub returns an empty hub logging to log. writeTimeout <= 0 means
// DefaultWriteTimeout.
func NewHub(log *slog.Logger, writeTimeout time.Duration) *Hub {
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Viewers are served from anywhere
			},
		},
		writeTimeout: writeTimeout,
		clients:      make(map[*client]struct{}),
	}
}

// ServeHTTP handles one client until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	defer conn.Close()

	c := &client{conn: conn, send: make(chan []byte, 1), done: make(chan struct{})}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.last != nil {
		c.offer(h.last)
	}
	h.mu.Unlock()
	defer h.remove(c)

	go h.writeLoop(c)
	defer close(c.done)

	h.log.Info("viewer connected", "remote", r.RemoteAddr)
	// Viewers only listen; reading detects the disconnect.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Info("viewer disconnected", "remote", r.RemoteAddr)
			return
		}
	}
}

// writeLoop sends queued frames to c until it is done or a write fails.
// A failed write closes the connection, which ends the read loop in
// ServeHTTP and removes the client.
func (h *Hub) writeLoop(c *client) {
	for {
		select {
		case frame := <-c.send:
			err := c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err == nil {
				err = c.conn.WriteMessage(websocket.BinaryMessage, frame)
			}
			if err != nil {
				h.log.Warn("websocket write failed", "remote", c.conn.RemoteAddr(), "err", err)
				c.conn.Close()
				return
			}
		case <-c.done:
			return
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues frame for every client and returns without waiting for
// any write.
func (h *Hub) Broadcast(frame []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = frame
	for c := range h.clients {
		c.offer(frame)
	}
}

// Publish encodes m as the frame for step and broadcasts it.
func Publish[T hwy.Floats](h *Hub, step uint64, m *grayscott.Matrix[T]) {
	h.Broadcast(EncodeFrame(step, m))
}
