package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/apex/log"
	"github.com/gorilla/mux"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

type createRequest struct {
	FEN string `json:"fen,omitempty"`
}

type moveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type promotionRequest struct {
	Piece chess.Kind `json:"piece"`
}

type destinationsResponse struct {
	From         chess.Square   `json:"from"`
	Destinations []chess.Square `json:"destinations"`
}

type listResponse struct {
	Games []string `json:"games"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeBody(r, &req); err != nil && err != io.EOF {
		writeDecodeError(w, err)
		return
	}

	g := game.New()
	if req.FEN != "" {
		var err error
		if g, err = game.NewFromFEN(req.FEN); err != nil {
			writeError(w, statusFor(err), err.Error())
			return
		}
	}

	sess, err := s.create(g)
	if err != nil {
		log.WithError(err).Error("create game")
		writeError(w, statusFor(err), err.Error())
		return
	}
	st := sess.state()
	log.WithFields(log.Fields{"game": sess.id, "fen": st.FEN}).Info("game created")

	w.Header().Set("Location", "/api/games/"+sess.id)
	w.Header().Set("ETag", etag(st.Version))
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, st)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.ids()
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, listResponse{Games: ids})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	st := sess.state()
	tag := etag(st.Version)
	w.Header().Set("ETag", tag)
	if r.Header.Get("If-None-Match") == tag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, st)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := s.remove(id); err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	log.WithField("game", id).Info("game deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDestinations(w http.ResponseWriter, r *http.Request) {
	from, err := chess.ParseSquare(mux.Vars(r)["square"])
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	sess.mu.Lock()
	dests := sess.game.LegalDestinations(from)
	sess.mu.Unlock()

	if dests == nil {
		dests = []chess.Square{}
	}
	writeJSON(w, destinationsResponse{From: from, Destinations: dests})
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := decodeBody(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	resp, err := s.move(sess, req.From, req.To)
	respondMove(w, resp, err)
}

func (s *Server) handlePromotion(w http.ResponseWriter, r *http.Request) {
	var req promotionRequest
	if err := decodeBody(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	resp, err := s.promote(sess, req.Piece)
	respondMove(w, resp, err)
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).WithField("game", sess.id).Warn("websocket upgrade")
		return
	}
	sess.join(conn)
	log.WithFields(log.Fields{
		"game":     sess.id,
		"remote":   conn.RemoteAddr().String(),
		"watchers": sess.watchers(),
	}).Info("watcher joined")

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				sess.leave(conn)
				return
			}
		}
	}()
}

// move plays from-to in sess, then persists and broadcasts the result.
func (s *Server) move(sess *session, from, to string) (MoveResponse, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return MoveResponse{}, fmt.Errorf("game %s: %w", sess.id, errors.ErrGameNotFound)
	}

	out, err := sess.game.AttemptMoveAlgebraic(from, to)
	if err == nil {
		err = sess.game.ErrorFor(out, from, to)
	}
	resp := moveResponse(sess.id, sess.game, out)
	if err == nil {
		s.committed(sess, out, log.Fields{"from": from, "to": to})
		sess.broadcast(resp.State)
	}
	return resp, err
}

// promote supplies the pending promotion choice in sess.
func (s *Server) promote(sess *session, kind chess.Kind) (MoveResponse, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.closed {
		return MoveResponse{}, fmt.Errorf("game %s: %w", sess.id, errors.ErrGameNotFound)
	}

	var at string
	if pending, ok := sess.game.RequiresPromotionChoice(); ok {
		at = pending.Square.String()
	}
	out := sess.game.SupplyPromotionChoice(kind)
	err := sess.game.ErrorFor(out, at, "")
	resp := moveResponse(sess.id, sess.game, out)
	if err == nil {
		s.committed(sess, out, log.Fields{"promotion": kind.String(), "square": at})
		sess.broadcast(resp.State)
	}
	return resp, err
}

// committed persists and logs a change to sess. The caller holds sess.mu.
func (s *Server) committed(sess *session, out game.MoveOutcome, fields log.Fields) {
	ctx := log.WithFields(fields).WithFields(log.Fields{
		"game":    sess.id,
		"outcome": out.Kind.String(),
		"status":  out.Status.String(),
		"ply":     sess.game.Plies(),
	})
	if err := s.persist(sess); err != nil {
		ctx.WithError(err).Error("persist game")
	}
	ctx.Info("move applied")
	if out.Status == engine.Checkmate {
		winner, _ := sess.game.Winner()
		ctx.WithField("winner", winner.String()).Info("checkmate")
	}
}

// respondMove writes the move response; a rejection carries its error
// and the status code for it.
func respondMove(w http.ResponseWriter, resp MoveResponse, err error) {
	if errors.Is(err, errors.ErrGameNotFound) {
		writeError(w, statusFor(err), err.Error())
		return
	}
	if err != nil {
		resp.Error = err.Error()
		w.WriteHeader(statusFor(err))
		writeJSON(w, resp)
		return
	}
	w.Header().Set("ETag", etag(resp.State.Version))
	writeJSON(w, resp)
}

// session resolves the {id} route variable, writing an error response if
// there is no such game.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session, bool) {
	sess, err := s.lookup(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return nil, false
	}
	return sess, true
}
