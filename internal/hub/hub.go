// Package hub owns the registry of connected display clients and fans
// committed events out to them. The hub is constructed at startup, injected
// where broadcasting is needed, and torn down on shutdown.
package hub

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"pos-backend/internal/common/logger"
	"pos-backend/internal/domain"
)

const (
	writeWait     = 10 * time.Second
	sendQueueSize = 32
)

type observer struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	lg       *logger.Logger
	upgrader websocket.Upgrader

	mu        sync.RWMutex
	observers map[string]*observer
	closed    bool
}

func New(lg *logger.Logger) *Hub {
	return &Hub{
		lg: lg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Display clients are served from other origins in development.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		observers: make(map[string]*observer),
	}
}

// ServeHTTP upgrades the connection and keeps the observer registered until
// the peer goes away. No events are replayed; clients re-fetch state after
// connecting.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.lg.Error("ws_upgrade_failed", err, nil)
		return
	}

	ob := &observer{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendQueueSize),
	}
	if !h.register(ob) {
		_ = conn.Close()
		return
	}
	h.lg.Info("observer_connected", map[string]any{"observer_id": ob.id})

	go ob.writePump()

	// Inbound frames are ignored; reading only detects disconnection.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.unregister(ob.id)
	h.lg.Info("observer_disconnected", map[string]any{"observer_id": ob.id})
}

// Broadcast delivers the event to every currently registered observer.
// Best-effort: an observer with a full queue just misses this event, and a
// dead one is cleaned up by its own read loop. The caller is never blocked
// and never sees a delivery failure.
func (h *Hub) Broadcast(e domain.Event) {
	body, err := json.Marshal(e)
	if err != nil {
		h.lg.Error("event_marshal_failed", err, map[string]any{"type": e.Type})
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ob := range h.observers {
		select {
		case ob.send <- body:
		default:
			h.lg.Debug("observer_queue_full", map[string]any{"observer_id": ob.id})
		}
	}
}

// Count reports the number of live observers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.observers)
}

// Close disconnects every observer and refuses new registrations.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ob := range h.observers {
		close(ob.send)
		delete(h.observers, id)
	}
}

func (h *Hub) register(ob *observer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.observers[ob.id] = ob
	return true
}

func (h *Hub) unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ob, ok := h.observers[id]; ok {
		close(ob.send)
		delete(h.observers, id)
	}
}

// writePump drains the send queue onto the connection. It exits when the
// queue is closed by unregister/Close or when a write fails.
func (ob *observer) writePump() {
	defer ob.conn.Close()
	for msg := range ob.send {
		_ = ob.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := ob.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	_ = ob.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
