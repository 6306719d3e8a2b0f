package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"vofc-ingest-be/internal/pkg/logger"
	"vofc-ingest-be/pkg/queue"
)

// Hub fans pipeline progress snapshots out to connected dashboard
// clients. Clients are write-only: the pipeline does not take input
// over the socket.
type Hub struct {
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]struct{}),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Progress client connected", map[string]interface{}{"clients": h.clientCount()})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Progress client disconnected", map[string]interface{}{"clients": h.clientCount()})
		}
	}
}

// Broadcast pushes one progress snapshot to every connected client.
// Slow clients are dropped rather than allowed to block the loop.
func (h *Hub) Broadcast(snapshot queue.Progress) {
	data, err := json.Marshal(map[string]interface{}{
		"type": "progress",
		"data": snapshot,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal progress snapshot", map[string]interface{}{"error": err.Error()})
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping client", nil)
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// StreamProgress polls the progress file and broadcasts whenever the
// snapshot changes. Blocks until the context is canceled.
func (h *Hub) StreamProgress(ctx context.Context, progressPath string, interval time.Duration) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastStamp time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snapshot, err := queue.ReadProgress(progressPath)
			if err != nil {
				continue
			}
			if snapshot.UpdatedAt.Equal(lastStamp) {
				continue
			}
			lastStamp = snapshot.UpdatedAt
			h.Broadcast(snapshot)
		}
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
