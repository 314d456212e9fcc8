// Package telemetry exposes viewer status over a WebSocket endpoint so a
// browser dashboard can watch which record is on display and how the
// frame loop is doing. The 3D scene itself is never sent anywhere; this
// is observability only.
package telemetry

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Status is the JSON payload pushed to every connected client.
type Status struct {
	Type       string  `json:"type"`
	Mission    string  `json:"mission"`
	ObjectID   string  `json:"objectId"`
	PeriodDays float64 `json:"periodDays"`
	EqTempK    float64 `json:"eqTempK"`
	StarTeffK  float64 `json:"starTeffK"`
	Elapsed    float64 `json:"elapsed"`
	FPS        float64 `json:"fps"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // local dashboard use only
	},
}

// Server broadcasts the latest Status on a fixed interval to all
// connected WebSocket clients.
type Server struct {
	mu      sync.RWMutex
	status  Status
	clients map[*websocket.Conn]*sync.Mutex
}

// NewServer returns a Server with no clients and an empty status.
func NewServer() *Server {
	return &Server{
		clients: make(map[*websocket.Conn]*sync.Mutex),
	}
}

// Publish replaces the status the broadcast loop sends. Safe to call from
// the render thread every frame.
func (s *Server) Publish(st Status) {
	st.Type = "status"
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// Run registers the /ws handler, starts the broadcast loop and serves
// forever. Intended to run on its own goroutine; errors are fatal to the
// process because a half-working telemetry listener is worse than none.
func (s *Server) Run(port, updateIntervalMs int) {
	go s.broadcastLoop(time.Duration(updateIntervalMs) * time.Millisecond)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)

	fmt.Printf("Telemetry on ws://localhost:%d/ws\n", port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	connMutex := &sync.Mutex{}
	s.mu.Lock()
	s.clients[conn] = connMutex
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
	}()

	// Push the current status immediately so a fresh client is not stuck
	// waiting for the next tick.
	s.sendStatus(conn, connMutex)

	// Drain (and ignore) client messages until the connection drops.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (s *Server) broadcastLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.RLock()
		conns := make(map[*websocket.Conn]*sync.Mutex, len(s.clients))
		for c, m := range s.clients {
			conns[c] = m
		}
		s.mu.RUnlock()

		for conn, connMutex := range conns {
			s.sendStatus(conn, connMutex)
		}
	}
}

func (s *Server) sendStatus(conn *websocket.Conn, connMutex *sync.Mutex) {
	s.mu.RLock()
	st := s.status
	s.mu.RUnlock()

	connMutex.Lock()
	err := conn.WriteJSON(st)
	connMutex.Unlock()
	if err != nil {
		log.Println("WebSocket write error:", err)
		conn.Close()
	}
}
