// Package server exposes chess games over HTTP and websockets.
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/apex/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/storage"
)

const maxJSONBodyBytes int64 = 1 << 16

// Server owns the live game sessions and the HTTP routes over them.
type Server struct {
	cfg       *config.ServerConfig
	accessLog io.Writer
	store     *storage.Store // nil when persistence is disabled
	router    *mux.Router
	upgrader  websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]*session

	srvMu sync.Mutex
	srv   *http.Server
}

// New creates a server. store may be nil.
func New(cfg *config.Config, store *storage.Store) *Server {
	s := &Server{
		cfg:       cfg.Server,
		accessLog: cfg.LogFile,
		store:     store,
		router:    mux.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		sessions: make(map[string]*session),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{})))
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})

	r.HandleFunc("/api/games/{id}/ws", s.handleWatch).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	api := r.PathPrefix("/api").Subrouter()
	api.Use(withJSON)
	api.HandleFunc("/games", s.handleCreate).Methods(http.MethodPost)
	api.HandleFunc("/games", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", s.handleGet).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", s.handleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/moves/{square}", s.handleDestinations).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/moves", s.handleMove).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/promotion", s.handlePromotion).Methods(http.MethodPost)
}

// Handler returns the root handler, with access logging when enabled.
func (s *Server) Handler() http.Handler {
	if s.cfg.AccessLog && s.accessLog != nil {
		return handlers.LoggingHandler(s.accessLog, s.router)
	}
	return s.router
}

// Listen starts the HTTP server and blocks until it is closed.
func (s *Server) Listen() error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	s.srvMu.Lock()
	s.srv = srv
	s.srvMu.Unlock()
	defer func() {
		s.srvMu.Lock()
		s.srv = nil
		s.srvMu.Unlock()
	}()

	log.WithField("addr", s.cfg.Addr).Info("listening")
	err := srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close shuts the HTTP server down gracefully and disconnects watchers.
func (s *Server) Close(ctx context.Context) error {
	s.mu.RLock()
	for _, sess := range s.sessions {
		sess.closeAll()
	}
	s.mu.RUnlock()

	s.srvMu.Lock()
	srv := s.srv
	s.srvMu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// create registers a new session for g.
func (s *Server) create(g *game.Game) (*session, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	sess := newSession(id, g)

	s.mu.Lock()
	if err := s.admit(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.sessions[id] = sess
	s.mu.Unlock()

	sess.mu.Lock()
	err = s.persist(sess)
	sess.mu.Unlock()
	if err != nil {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, err
	}
	return sess, nil
}

// lookup returns the live session for id, loading it from the store if
// it is not in memory.
func (s *Server) lookup(id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		return sess, nil
	}
	if s.store == nil {
		return nil, fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
	}

	g, err := s.store.LoadGame(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}
	if err := s.admit(); err != nil {
		return nil, err
	}
	sess = newSession(id, g)
	s.sessions[id] = sess
	log.WithField("game", id).Info("game loaded from store")
	return sess, nil
}

// admit reports whether another session fits under MaxGames. The caller
// holds s.mu.
func (s *Server) admit() error {
	if s.cfg.MaxGames > 0 && len(s.sessions) >= s.cfg.MaxGames {
		return fmt.Errorf("%d games open: %w", s.cfg.MaxGames, errors.ErrTooManyGames)
	}
	return nil
}

// remove drops a session from memory and the store. A handler still
// holding the session sees it closed and does not save it again.
func (s *Server) remove(id string) error {
	s.mu.Lock()
	sess, live := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if live {
		sess.mu.Lock()
		sess.closed = true
		sess.mu.Unlock()
		sess.closeAll()
	}
	if s.store == nil {
		if !live {
			return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
		}
		return nil
	}
	err := s.store.Delete(id)
	if errors.Is(err, errors.ErrGameNotFound) && live {
		return nil
	}
	return err
}

// ids returns the ids of every live or stored game, sorted.
func (s *Server) ids() ([]string, error) {
	s.mu.RLock()
	live := make(map[string]*session, len(s.sessions))
	maps.Copy(live, s.sessions)
	s.mu.RUnlock()

	ids := make([]string, 0, len(live))
	for id := range live {
		ids = append(ids, id)
	}
	if s.store != nil {
		stored, err := s.store.List()
		if err != nil {
			return nil, err
		}
		ids = append(ids, stored...)
	}
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// persist saves the session's game. The caller holds sess.mu.
func (s *Server) persist(sess *session) error {
	if s.store == nil {
		return nil
	}
	return s.store.Save(sess.id, sess.game.Snapshot())
}

func newID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate game id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// recoveryLogger routes handler panics to the structured log.
type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	log.Error(fmt.Sprint(v...))
}
