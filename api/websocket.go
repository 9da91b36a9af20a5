package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return isAllowedOrigin(r.Header.Get("Origin"))
	},
}

// wsClient is a connected WebSocket client subscribed to one job's
// events (or every job's, if it subscribes with an empty job ID; it
// receives nothing until it sends a subscribe message): a
// writePump goroutine that both forwards broadcast events and pings
// the connection, and a readPump goroutine that parses subscription
// requests and detects disconnects.
type wsClient struct {
	conn *websocket.Conn
	send chan BroadcastEvent
	sub  *Subscription
	jm   *JobManager
	bc   *Broadcaster
	mu   sync.Mutex
}

type subscribeRequest struct {
	Type  string `json:"type"`
	JobID string `json:"jobId"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan BroadcastEvent, 256),
		jm:   s.jobs,
		bc:   s.broadcaster,
	}

	go client.writePump()
	go client.readPump()
}

func (c *wsClient) readPump() {
	defer func() {
		c.cleanup()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket error: %v", err)
			}
			return
		}

		var req subscribeRequest
		if err := json.Unmarshal(message, &req); err != nil {
			continue
		}
		if req.Type == "subscribe" {
			c.subscribe(req.JobID)
		}
	}
}

func (c *wsClient) subscribe(jobID string) {
	c.mu.Lock()
	if c.sub != nil {
		c.bc.Unsubscribe(c.sub)
	}
	c.sub = c.bc.Subscribe(jobID)
	sub := c.sub
	c.mu.Unlock()

	go func() {
		for event := range sub.Channel {
			c.send <- event
		}
	}()
}

func (c *wsClient) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sub != nil {
		c.bc.Unsubscribe(c.sub)
		c.sub = nil
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
