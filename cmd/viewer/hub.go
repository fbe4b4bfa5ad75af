package main

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// broadcastHub fans a per-tick snapshot out to every connected viewer,
// the teacher's net.Hub idiom reduced to a single read-only channel (no
// per-client commands to ingest — viewers only watch).
type broadcastHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	logger  *log.Logger
}

func newBroadcastHub(logger *log.Logger) *broadcastHub {
	if logger == nil {
		logger = log.Default()
	}
	return &broadcastHub{
		clients: make(map[*websocket.Conn]struct{}),
		logger:  logger,
	}
}

func (h *broadcastHub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = struct{}{}
}

func (h *broadcastHub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}

// broadcast writes data to every registered client, dropping (and
// closing) any connection whose write fails rather than letting one
// slow client stall the rest.
func (h *broadcastHub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Printf("dropping viewer connection: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
