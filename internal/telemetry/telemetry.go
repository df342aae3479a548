// Package telemetry broadcasts a CPU's tick-by-tick register state to
// connected websocket clients - useful for watching a conformance run
// or a single stepped instruction live, the way the teacher's web
// display hub pushes frames to connected browsers.
package telemetry

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/fauxboy/sm83/internal/cpu"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Event is one tick's worth of observable state, serialized to JSON for
// every connected client.
type Event struct {
	Tick int    `json:"tick"`
	A    uint8  `json:"a"`
	B    uint8  `json:"b"`
	C    uint8  `json:"c"`
	D    uint8  `json:"d"`
	E    uint8  `json:"e"`
	F    uint8  `json:"f"`
	H    uint8  `json:"h"`
	L    uint8  `json:"l"`
	SP   uint16 `json:"sp"`
	PC   uint16 `json:"pc"`
}

// Hub fans out tick-by-tick Events to every connected client.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
	tick    int
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]chan []byte)}
}

// Handler upgrades incoming HTTP requests to websocket connections and
// registers them as broadcast targets until the client disconnects.
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	send := make(chan []byte, 64)
	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for msg := range send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}()
}

// TickFunc returns a cpu.TickFunc that broadcasts an Event to every
// connected client on each tick. Install it with CPU.SetTickFunc to
// watch a run live.
func (h *Hub) TickFunc() cpu.TickFunc {
	return func(c *cpu.CPU) {
		h.tick++
		snap := c.Snapshot()
		event := Event{
			Tick: h.tick,
			A: snap.A, B: snap.B, C: snap.C, D: snap.D,
			E: snap.E, F: snap.F, H: snap.H, L: snap.L,
			SP: snap.SP, PC: snap.PC,
		}
		data, err := json.Marshal(event)
		if err != nil {
			return
		}
		h.broadcast(data)
	}
}

func (h *Hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, send := range h.clients {
		select {
		case send <- data:
		default:
			close(send)
			delete(h.clients, conn)
		}
	}
}
