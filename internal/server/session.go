package server

import (
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/gorilla/websocket"

	"github.com/lgbarn/chessrules-go/internal/game"
)

const writeWait = 5 * time.Second

// session is one live game and its websocket watchers.
// mu guards game and closed; clientsMu guards clients and serialises
// socket writes.
type session struct {
	id     string
	mu     sync.Mutex
	game   *game.Game
	closed bool // set once the game is deleted

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]struct{}
}

func newSession(id string, g *game.Game) *session {
	return &session{
		id:      id,
		game:    g,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// state returns the current view under the game lock.
func (s *session) state() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stateOf(s.id, s.game)
}

// join registers conn and sends it the current state.
func (s *session) join(conn *websocket.Conn) {
	st := s.state()

	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[conn] = struct{}{}
	s.send(conn, st)
}

// leave unregisters and closes conn.
func (s *session) leave(conn *websocket.Conn) {
	s.clientsMu.Lock()
	delete(s.clients, conn)
	s.clientsMu.Unlock()
	conn.Close()
}

// broadcast sends st to every watcher, dropping any that fail.
func (s *session) broadcast(st GameState) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for conn := range s.clients {
		s.send(conn, st)
	}
}

// send writes st to conn. The caller holds clientsMu.
func (s *session) send(conn *websocket.Conn, st GameState) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(st); err != nil {
		log.WithFields(log.Fields{
			"game":   s.id,
			"remote": conn.RemoteAddr().String(),
		}).WithError(err).Warn("dropping watcher")
		delete(s.clients, conn)
		conn.Close()
	}
}

// closeAll disconnects every watcher.
func (s *session) closeAll() {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for conn := range s.clients {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "game closed"),
			time.Now().Add(writeWait))
		conn.Close()
		delete(s.clients, conn)
	}
}

func (s *session) watchers() int {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	return len(s.clients)
}
