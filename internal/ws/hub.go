package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/clothesguard/api/internal/model"
)

// Hub manages WebSocket connections and fans out domain events (new
// sensor readings, new notifications) to every connected dashboard.
// Single-instance broadcast only; there is no cross-instance delivery.
type Hub struct {
	clients map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan *model.WSEvent
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *model.WSEvent, 256),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)

		case event := <-h.broadcast:
			h.broadcastToClients(event)
		}
	}
}

// Register queues a client for registration with the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Broadcast queues an event for delivery to all connected clients.
// Never blocks the caller: when the buffer is full the event is dropped,
// the store remains the source of truth.
func (h *Hub) Broadcast(event *model.WSEvent) {
	select {
	case h.broadcast <- event:
	default:
		log.Printf("⚠️  Event stream buffer full, dropping %s event", event.Type)
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	log.Printf("✅ Stream client connected: %s (total: %d)", client.UserID, len(h.clients))
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	log.Printf("❌ Stream client disconnected: %s", client.UserID)
}

func (h *Hub) broadcastToClients(event *model.WSEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling broadcast event: %v", err)
		return
	}

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
