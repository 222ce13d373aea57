package websockets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chris/intent-reconciliation/pkg/money"
	"github.com/chris/intent-reconciliation/pkg/notify"
	"github.com/gorilla/websocket"
)

// Hub keeps the dashboard connections and broadcasts messages to them.
type Hub struct {
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	converter *money.Converter
	upgrader  websocket.Upgrader
	mu        sync.RWMutex
}

// Option configures a Hub.
type Option func(*Hub)

// WithAllowedOrigins sets the browser origins allowed to open a connection.
func WithAllowedOrigins(origins ...string) Option {
	return func(h *Hub) { h.upgrader.CheckOrigin = checkOrigin(origins) }
}

// NewHub creates a Hub. Amounts in published payloads are formatted with converter.
func NewHub(converter *money.Converter, opts ...Option) *Hub {
	h := &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		converter:  converter,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(nil),
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Make sure we conform to the interfaces
var (
	_ Publisher       = (*Hub)(nil)
	_ notify.Notifier = (*Hub)(nil)
)

// Run serves register, unregister and broadcast requests until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Slow consumer.
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish queues a message for every connected client. A full queue drops the message.
func (h *Hub) Publish(ctx context.Context, message Message) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}
	select {
	case h.broadcast <- payload:
		return nil
	default:
		slog.WarnContext(ctx, "websocket broadcast queue full, dropping message", "type", message.Type)
		return nil
	}
}

// Notify publishes an intentResolved message.
func (h *Hub) Notify(ctx context.Context, n notify.Notification) error {
	return h.Publish(ctx, Message{
		Type: MessageTypeIntentResolved,
		Payload: IntentResolvedPayload{
			OwnerID:  n.OwnerID,
			IntentID: n.IntentID,
			Kind:     n.Kind,
			Status:   n.Status,
			Amount:   h.converter.Format(n.Amount),
		},
	})
}
