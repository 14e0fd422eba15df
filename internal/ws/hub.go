// internal/ws/hub.go

// Package ws implements the WebSocket transport: connection accept, the
// per-connection read loop, and outbound delivery for the game core.
package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const writeTimeout = 5 * time.Second

// client wraps one live WebSocket connection. mu serializes writes; open
// flips to false when the read loop exits.
type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
	open bool
}

// Hub tracks live connections and implements the game.Gateway contract.
type Hub struct {
	log   *logrus.Logger
	mu    sync.RWMutex
	conns map[uuid.UUID]*client
}

// NewHub creates an empty connection hub.
func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		log:   log,
		conns: make(map[uuid.UUID]*client),
	}
}

func (h *Hub) add(id uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[id] = &client{conn: conn, open: true}
}

func (h *Hub) remove(id uuid.UUID) {
	h.mu.Lock()
	c := h.conns[id]
	delete(h.conns, id)
	h.mu.Unlock()

	if c != nil {
		c.mu.Lock()
		c.open = false
		c.mu.Unlock()
	}
}

// Send marshals msg to JSON and writes it as a single text frame. Sends
// are fire-and-forget: failures are logged and the connection is left for
// the read loop to tear down.
func (h *Hub) Send(id uuid.UUID, msg any) {
	h.mu.RLock()
	c := h.conns[id]
	h.mu.RUnlock()
	if c == nil {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.log.WithError(err).Error("marshaling outbound message")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.open {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := c.conn.Write(ctx, websocket.MessageText, data); err != nil {
		h.log.WithError(err).WithField("conn", id).Warn("write to connection failed")
	}
}

// IsOpen reports whether the connection is currently open.
func (h *Hub) IsOpen(id uuid.UUID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.conns[id]
	return ok && c.open
}
