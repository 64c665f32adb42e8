// internal/server/hub.go
package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Local dev server only; origin checking is deliberately skipped.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// hub tracks the connected live-reload clients and pushes reload
// notifications to all of them.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]bool)}
}

func (h *hub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
	slog.Debug("Live-reload client connected")
}

func (h *hub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
		slog.Debug("Live-reload client disconnected")
	}
}

// broadcastReload tells every connected client to refresh. Clients that
// fail the write are assumed gone and dropped.
func (h *hub) broadcastReload() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, []byte("reload")); err != nil {
			slog.Debug("Dropping live-reload client", "error", err)
			client.Close()
			delete(h.clients, client)
		}
	}
}

// serveWs upgrades an HTTP request to a websocket and parks it in the
// hub until the client goes away. Clients never send messages; the read
// loop only detects disconnection.
func serveWs(h *hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err)
		return
	}
	h.register(conn)
	defer h.unregister(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
