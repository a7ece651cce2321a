package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/caravelo/fleettrack/internal/pkg/logger"
	"github.com/caravelo/fleettrack/internal/pkg/models"
)

const writeTimeout = 5 * time.Second

// Event is the envelope for messages pushed to WebSocket clients
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub pushes tracking snapshots to connected WebSocket clients. Dashboards
// subscribe here instead of polling the HTTP API.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*websocket.Conn
	latest  *models.TrackingSnapshot
}

// NewHub creates a WebSocket hub
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[string]*websocket.Conn),
	}
}

// Run broadcasts every snapshot on the channel until the context is
// cancelled
func (h *Hub) Run(ctx context.Context, snapshots <-chan models.TrackingSnapshot) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case snapshot, ok := <-snapshots:
			if !ok {
				h.closeAll()
				return
			}
			h.Broadcast(snapshot)
		}
	}
}

// HandleConnection upgrades an HTTP request and streams snapshots until the
// client disconnects. A newly connected client immediately receives the
// latest snapshot so it does not wait for the next poll tick.
func (h *Hub) HandleConnection(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	clientID := uuid.New().String()
	h.addClient(clientID, conn)
	defer h.removeClient(clientID)

	logger.Info("WebSocket client connected",
		logger.String("client_id", clientID),
		logger.String("remote", conn.RemoteAddr().String()))

	if latest := h.Latest(); latest != nil {
		if err := h.send(conn, Event{Event: "tracking.snapshot", Data: latest}); err != nil {
			return nil
		}
	}

	// Read loop only detects disconnects; clients do not send commands.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			logger.Debug("WebSocket client disconnected",
				logger.String("client_id", clientID))
			return nil
		}
	}
}

// Broadcast pushes a snapshot to every connected client. Clients whose
// writes fail are dropped.
func (h *Hub) Broadcast(snapshot models.TrackingSnapshot) {
	h.mu.Lock()
	h.latest = &snapshot
	h.mu.Unlock()

	h.BroadcastEvent(Event{Event: "tracking.snapshot", Data: snapshot})
}

// BroadcastEvent pushes an arbitrary event to every connected client.
// Clients whose writes fail are dropped.
func (h *Hub) BroadcastEvent(event Event) {
	h.mu.RLock()
	conns := make(map[string]*websocket.Conn, len(h.clients))
	for id, conn := range h.clients {
		conns[id] = conn
	}
	h.mu.RUnlock()

	for id, conn := range conns {
		if err := h.send(conn, event); err != nil {
			logger.Warn("Dropping WebSocket client after failed write",
				logger.String("client_id", id),
				logger.Err(err))
			h.removeClient(id)
		}
	}
}

// Latest returns the last broadcast snapshot, or nil before the first one
func (h *Hub) Latest() *models.TrackingSnapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) send(conn *websocket.Conn, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (h *Hub) addClient(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[id] = conn
}

func (h *Hub) removeClient(id string) {
	h.mu.Lock()
	conn, ok := h.clients[id]
	delete(h.clients, id)
	h.mu.Unlock()
	if ok {
		conn.Close()
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		conn.Close()
		delete(h.clients, id)
	}
}
