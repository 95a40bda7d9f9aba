// Package realtime pushes row-level change notifications to connected
// clients over WebSocket.
package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"fieldserve/internal/shared/goroutine"
	"fieldserve/internal/shared/logger"
)

const (
	OperationInsert = "insert"
	OperationUpdate = "update"
	OperationDelete = "delete"

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// ChangeEvent identifies a single mutated row. Clients refetch what
// they care about instead of receiving full payloads.
type ChangeEvent struct {
	Table     string `json:"table"`
	RowID     uint   `json:"row_id"`
	Operation string `json:"operation"`
	At        int64  `json:"at"`
}

type Client struct {
	conn *websocket.Conn
	send chan ChangeEvent
}

// Hub fans change events out to every connected client. A client whose
// send buffer is full is dropped rather than allowed to stall the rest.
type Hub struct {
	clients map[*Client]struct{}
	mu      sync.RWMutex
	logger  logger.Interface
}

func NewHub(log logger.Interface) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  log.Named("realtime"),
	}
}

// Register takes ownership of an upgraded connection and starts its
// read and write pumps.
func (h *Hub) Register(conn *websocket.Conn) {
	client := &Client{
		conn: conn,
		send: make(chan ChangeEvent, 64),
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Infow("client connected", "clients", count)

	goroutine.SafeGo(h.logger, "ws-write-pump", func() { h.writePump(client) })
	goroutine.SafeGo(h.logger, "ws-read-pump", func() { h.readPump(client) })
}

func (h *Hub) Broadcast(event ChangeEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client.send <- event:
		default:
			h.logger.Warnw("client send buffer full, dropping connection")
			goroutine.SafeGo(h.logger, "ws-evict", func() { h.unregister(client) })
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) Close() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.clients = make(map[*Client]struct{})
	h.mu.Unlock()

	for _, client := range clients {
		close(client.send)
		client.conn.Close()
	}
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
	}
	h.mu.Unlock()

	if ok {
		close(client.send)
		client.conn.Close()
	}
}

func (h *Hub) writePump(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.unregister(client)
	}()

	for {
		select {
		case event, ok := <-client.send:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames; the feed is one-way. It exists to
// process pongs and notice a closed peer.
func (h *Hub) readPump(client *Client) {
	defer h.unregister(client)

	client.conn.SetReadLimit(512)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}
