package ui

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/drujensen/agenthub/internal/domain/events"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const consoleTopic = "console"

func sessionTopic(id string) string {
	return "session:" + id
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, message)
}

// Hub fans domain events out to websocket clients. Chat pages listen on their
// session's topic, console pages on the catalog topic.
type Hub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
	cancels []func()
}

func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow connections from any origin for development
			},
		},
		clients: make(map[string]map[*client]struct{}),
	}

	h.cancels = append(h.cancels,
		events.SubscribeToSessionEvents(h.onSessionEvent),
		events.SubscribeToAgentEvents(h.onAgentEvent),
	)

	return h
}

// Close stops listening for events and disconnects every client.
func (h *Hub) Close() {
	for _, cancel := range h.cancels {
		cancel()
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for topic, clients := range h.clients {
		for c := range clients {
			c.conn.Close()
		}
		delete(h.clients, topic)
	}
}

func (h *Hub) onSessionEvent(data events.SessionEventData) {
	if data.Chat == nil {
		return
	}
	h.broadcast(sessionTopic(data.Chat.ID), map[string]interface{}{
		"type":          "session_refresh",
		"change":        data.Change,
		"session_id":    data.Chat.ID,
		"sending":       data.Chat.Sending,
		"message_count": len(data.Chat.Messages),
		"chat":          data.Chat,
	})
}

func (h *Hub) onAgentEvent(data events.AgentEventData) {
	payload := map[string]interface{}{
		"type":   "agents_refresh",
		"change": data.Change,
	}
	if data.Agent != nil {
		payload["agent_id"] = data.Agent.ID
	}
	h.broadcast(consoleTopic, payload)
}

func (h *Hub) broadcast(topic string, payload interface{}) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients[topic]))
	for c := range h.clients[topic] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	if len(clients) == 0 {
		return
	}

	message, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal WebSocket message", zap.Error(err))
		return
	}

	// Send to clients outside of the lock to avoid holding it during network operations
	for _, c := range clients {
		if err := c.write(message); err != nil {
			h.logger.Warn("Failed to send WebSocket message to client, removing from clients", zap.Error(err))
			h.remove(topic, c)
			c.conn.Close()
		}
	}
}

func (h *Hub) add(topic string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[topic] == nil {
		h.clients[topic] = make(map[*client]struct{})
	}
	h.clients[topic][c] = struct{}{}
}

func (h *Hub) remove(topic string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[topic], c)
	if len(h.clients[topic]) == 0 {
		delete(h.clients, topic)
	}
}

// Clients reports how many connections listen on topic.
func (h *Hub) Clients(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic])
}

// Serve upgrades the request and keeps the connection registered on topic
// until the client goes away.
func (h *Hub) Serve(c echo.Context, topic string) error {
	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.logger.Error("Failed to upgrade WebSocket connection", zap.Error(err))
		return err
	}
	defer ws.Close()

	cl := &client{conn: ws}
	h.add(topic, cl)
	h.logger.Debug("WebSocket client connected", zap.String("topic", topic))

	defer func() {
		h.remove(topic, cl)
		h.logger.Debug("WebSocket client disconnected", zap.String("topic", topic))
	}()

	// Keep connection alive; clients only listen
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	return nil
}
