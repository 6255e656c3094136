package service

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/akeil/tripjournal/internal/logging"
)

const (
	pingInterval = 30 * time.Second
	writeTimeout = 5 * time.Second
	// sendBuffer is the number of messages queued per client. A client
	// that falls further behind is dropped.
	sendBuffer = 32
)

// Message is sent to status feed clients whenever a job changes.
type Message struct {
	Type string `json:"type"`
	Job  Job    `json:"job"`
}

// Hub broadcasts job status changes to websocket clients.
type Hub struct {
	upgrader websocket.Upgrader
	mx       sync.Mutex
	clients  map[*client]bool
	closed   bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	exit chan struct{}
	once sync.Once
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]bool),
	}
}

// ServeHTTP upgrades the request to a websocket connection and adds it to
// the feed.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		logging.Warning("Websocket upgrade failed: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
		exit: make(chan struct{}),
	}
	if !h.add(c) {
		conn.Close()
		return
	}
	logging.Debug("Status feed client connected from %v", r.RemoteAddr)

	go h.write(c)
	go h.read(c)
}

// Publish sends the job state to all clients.
func (h *Hub) Publish(j Job) {
	data, err := json.Marshal(Message{Type: "status", Job: j})
	if err != nil {
		logging.Error("Encode status message: %v", err)
		return
	}

	h.mx.Lock()
	defer h.mx.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			logging.Warning("Drop slow status feed client")
			delete(h.clients, c)
			c.stop()
		}
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mx.Lock()
	defer h.mx.Unlock()
	return len(h.clients)
}

// Close disconnects all clients.
func (h *Hub) Close() {
	h.mx.Lock()
	defer h.mx.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		c.stop()
	}
}

func (h *Hub) add(c *client) bool {
	h.mx.Lock()
	defer h.mx.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = true
	return true
}

func (h *Hub) remove(c *client) {
	h.mx.Lock()
	defer h.mx.Unlock()
	delete(h.clients, c)
}

func (c *client) stop() {
	c.once.Do(func() {
		close(c.exit)
	})
}

// write is the only goroutine that writes to the connection.
func (h *Hub) write(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case <-c.exit:
			// close the connection by sending a close message
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			err := c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeTimeout))
			if err != nil {
				logging.Debug("Write close: %v", err)
				return
			}
			// wait for the client to close the connection (or timeout)
			select {
			case <-c.done:
			case <-time.After(time.Second):
			}
			return
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			err := c.conn.WriteMessage(websocket.TextMessage, data)
			if err != nil {
				logging.Debug("Write status message: %v", err)
				return
			}
		case <-ticker.C:
			err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
			if err != nil {
				return
			}
		}
	}
}

// read discards incoming messages until the client goes away.
func (h *Hub) read(c *client) {
	defer close(c.done)
	for {
		_, _, err := c.conn.ReadMessage()
		if err != nil {
			logging.Debug("Status feed client gone: %v", err)
			return
		}
	}
}
