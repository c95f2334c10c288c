package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/skobelin/paytrack/internal/bus"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// streamEnvelope frames events for websocket clients.
type streamEnvelope struct {
	Event string               `json:"event"`
	Data  bus.TransactionEvent `json:"data"`
}

// StreamHandler upgrades connections to the live transaction feed.
type StreamHandler struct {
	feed     *bus.Broadcaster
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewStreamHandler constructs StreamHandler allowing the given origin.
// An empty origin allows all, matching the permissive socket channel of the
// dashboard clients.
func NewStreamHandler(feed *bus.Broadcaster, origin string, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		feed:   feed,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if origin == "" {
					return true
				}
				got := r.Header.Get("Origin")
				return got == "" || got == origin
			},
		},
	}
}

// Serve handles GET /api/stream.
func (h *StreamHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	sub := h.feed.Subscribe()
	go h.writePump(conn, sub)
	h.readPump(conn, sub)
}

// readPump discards inbound frames; its only purpose is detecting the close.
func (h *StreamHandler) readPump(conn *websocket.Conn, sub *bus.Subscriber) {
	defer func() {
		h.feed.Unsubscribe(sub)
		_ = conn.Close()
	}()
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *StreamHandler) writePump(conn *websocket.Conn, sub *bus.Subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		h.feed.Unsubscribe(sub)
		_ = conn.Close()
	}()

	for {
		select {
		case event, ok := <-sub.Events():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(streamEnvelope{Event: "transaction:new", Data: event}); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
