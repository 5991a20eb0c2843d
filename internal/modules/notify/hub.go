package notify

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans reservation events out to connected admin dashboards.
type Hub struct {
	mutex       sync.RWMutex
	nextID      int64
	connections map[int64]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{connections: make(map[int64]*websocket.Conn)}
}

func (h *Hub) Register(conn *websocket.Conn) int64 {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	h.connections[h.nextID] = conn
	return h.nextID
}

func (h *Hub) Unregister(id int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[id]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, id)
	}
}

func (h *Hub) Broadcast(message interface{}) {
	h.mutex.RLock()
	conns := make(map[int64]*websocket.Conn, len(h.connections))
	for id, conn := range h.connections {
		conns[id] = conn
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if err := conn.WriteJSON(message); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}
