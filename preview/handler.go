package preview

import (
	"encoding/json"
	"log"
	nethttp "net/http"

	"github.com/gorilla/websocket"
)

// HandlerConfig configures a preview Handler.
type HandlerConfig struct {
	Logger *log.Logger

	// Pixels is the strip length reported in the hello message.
	Pixels int

	// OnControl receives parsed control messages from clients. It is called
	// on the connection's read goroutine; implementations that touch the
	// runner must hand the message over to the runner goroutine themselves.
	OnControl func(msg ControlMessage)
}

// Handler upgrades HTTP requests to preview websocket sessions.
type Handler struct {
	hub       *Hub
	logger    *log.Logger
	pixels    int
	onControl func(msg ControlMessage)
	upgrader  websocket.Upgrader
}

// NewHandler creates a handler that registers connections on the given hub.
func NewHandler(hub *Hub, cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *nethttp.Request) bool {
			return true
		},
	}

	return &Handler{
		hub:       hub,
		logger:    logger,
		pixels:    cfg.Pixels,
		onControl: cfg.OnControl,
		upgrader:  upgrader,
	}
}

// Handle upgrades the request, sends the hello message and the most recent
// frame, then reads control messages until the client disconnects.
func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("preview: upgrade failed: %v", err)
		return
	}

	hello, err := json.Marshal(helloMessage{Type: "hello", Pixels: h.pixels})
	if err != nil {
		h.logger.Printf("preview: failed to marshal hello: %v", err)
		conn.Close()
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, hello); err != nil {
		conn.Close()
		return
	}

	sub := h.hub.subscribe(conn)
	defer h.hub.unsubscribe(sub)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg ControlMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Printf("preview: discarding malformed message: %v", err)
			continue
		}

		if h.onControl != nil {
			h.onControl(msg)
		}
	}
}
