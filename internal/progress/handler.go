package progress

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades incoming requests to WebSocket connections and
// registers them with hub for epoch broadcasts. Client-to-server
// messages are read and discarded; this channel is read-only for clients.
type Handler struct {
	hub *Hub
}

// NewHandler wraps hub as an http.Handler.
func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("progress: websocket upgrade error: %v", err)
		return
	}

	client := &Client{hub: h.hub, conn: conn, send: make(chan []byte, 256)}
	h.hub.Register(client)
	go client.writePump()

	h.drain(client)
}

// drain discards any client-to-server frames until the connection
// closes, then unregisters the client.
func (h *Handler) drain(c *Client) {
	defer func() {
		h.hub.Unregister(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
