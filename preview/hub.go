// Package preview streams rendered framebuffer snapshots to websocket
// subscribers and feeds their parameter edits back to the embedding
// application. It carries frames out of the runner loop; it never steps the
// runner itself.
package preview

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/plus3/strand/behavior"
)

const sessionSendBuffer = 16

// Hub fans rendered frames out to all connected preview sessions. Broadcast
// is safe to call from the runner goroutine; slow or dead subscribers are
// dropped rather than allowed to stall the loop.
type Hub struct {
	logger *log.Logger

	mu        sync.Mutex
	sessions  map[*session]struct{}
	lastFrame []byte
}

// NewHub creates a hub. A nil logger defaults to log.Default().
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		logger:   logger,
		sessions: make(map[*session]struct{}),
	}
}

// Broadcast marshals one frame and queues it on every session. The frame is
// retained so late subscribers receive a keyframe on connect.
func (h *Hub) Broadcast(tick uint64, pixels []behavior.RGB) {
	msg := frameMessage{
		Type:   "frame",
		Tick:   tick,
		Pixels: make([][3]uint8, len(pixels)),
	}
	for i, px := range pixels {
		msg.Pixels[i] = [3]uint8{px.R, px.G, px.B}
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Printf("preview: failed to marshal frame %d: %v", tick, err)
		return
	}

	h.mu.Lock()
	h.lastFrame = data
	for s := range h.sessions {
		select {
		case s.send <- data:
		default:
			// Subscriber cannot keep up; cut it loose.
			delete(h.sessions, s)
			close(s.send)
		}
	}
	h.mu.Unlock()
}

// SessionCount returns the number of connected subscribers.
func (h *Hub) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

func (h *Hub) subscribe(conn *websocket.Conn) *session {
	s := &session{
		conn: conn,
		send: make(chan []byte, sessionSendBuffer),
	}

	h.mu.Lock()
	if h.lastFrame != nil {
		s.send <- h.lastFrame
	}
	h.sessions[s] = struct{}{}
	h.mu.Unlock()

	go s.writePump()
	return s
}

func (h *Hub) unsubscribe(s *session) {
	h.mu.Lock()
	if _, ok := h.sessions[s]; ok {
		delete(h.sessions, s)
		close(s.send)
	}
	h.mu.Unlock()
}

// session is one connected preview subscriber. Writes go through the send
// channel so the hub never blocks on the network.
type session struct {
	conn *websocket.Conn
	send chan []byte
}

func (s *session) writePump() {
	for data := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			break
		}
	}
	s.conn.Close()
}
