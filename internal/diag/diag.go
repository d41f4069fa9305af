// Package diag serves local status and a websocket feed of confinement
// transitions.
package diag

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/frudas24/cursorcage/internal/engine"
	"github.com/frudas24/cursorcage/internal/state"
	"github.com/frudas24/cursorcage/internal/wingeom"
)

// Status is the JSON state snapshot served at /api/state.
type Status struct {
	Enabled     bool   `json:"enabled"`
	Confined    bool   `json:"confined"`
	Policy      string `json:"policy"`
	TargetExe   string `json:"targetExe"`
	RecenterKey string `json:"recenterKey"`
	Clip        string `json:"clip,omitempty"`
}

// Command is a websocket payload from the status client.
type Command struct {
	T string `json:"t"`
}

// Server exposes runtime state over HTTP and websocket. It observes the
// engine's transition feed off the hot path; the engine drops events
// rather than wait for a slow server.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	st       *state.State
	policy   string
	target   string
	toggle   func()
	events   <-chan engine.Transition
	confined bool
	clip     wingeom.Rect
	conn     *websocket.Conn
}

// NewServer creates a status server over the shared flags and the
// engine's transition feed. toggle must carry hotkey-equivalent
// semantics: flip the enabled flag and release the clip when disabling.
func NewServer(st *state.State, policy, targetExe string, toggle func(), events <-chan engine.Transition) *Server {
	return &Server{
		st:     st,
		policy: policy,
		target: targetExe,
		toggle: toggle,
		events: events,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// RegisterRoutes wires the status handlers onto the mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/ws/status", s.handleStatusWS)
}

// Run consumes the transition feed until the channel closes, updating the
// snapshot and forwarding events to the connected client.
func (s *Server) Run() {
	for t := range s.events {
		s.consume(t)
	}
}

// consume folds one transition into the snapshot and pushes it out.
func (s *Server) consume(t engine.Transition) {
	s.mu.Lock()
	switch t.Kind {
	case engine.TransConfined:
		s.confined = true
		s.clip = t.Clip
	case engine.TransReleased, engine.TransDisabled:
		s.confined = false
		s.clip = wingeom.Rect{}
	}
	conn := s.conn
	s.mu.Unlock()

	if conn != nil {
		if err := conn.WriteJSON(t); err != nil {
			s.cleanupConn(conn)
		}
	}
}

// snapshot assembles the current status.
func (s *Server) snapshot() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	flags := s.st.Snapshot()
	st := Status{
		Enabled:     flags.Enabled,
		Confined:    s.confined,
		Policy:      s.policy,
		TargetExe:   s.target,
		RecenterKey: flags.RecenterKey,
	}
	if s.confined {
		st.Clip = s.clip.String()
	}
	return st
}

// handleState serves the JSON state snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshot())
}

// handleStatusWS upgrades the connection and processes client commands.
func (s *Server) handleStatusWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			return
		}
		s.handleCommand(cmd)
	}
}

// handleCommand dispatches a single client command.
func (s *Server) handleCommand(cmd Command) {
	switch cmd.T {
	case "toggle":
		if s.toggle != nil {
			s.toggle()
		}
		log.Printf("diag: toggle requested, confinement enabled=%v", s.st.Enabled())
	default:
	}
}

// acceptConn ensures only one active status connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("status connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}
