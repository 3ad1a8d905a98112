package server

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// GameState is the JSON view of a game sent to clients.
type GameState struct {
	ID         string                 `json:"id"`
	FEN        string                 `json:"fen"`
	Board      []string               `json:"board"` // rank 8 first, '.' for empty
	SideToMove chess.Colour           `json:"side_to_move"`
	Status     engine.Status          `json:"status"`
	Over       bool                   `json:"over"`
	Winner     *chess.Colour          `json:"winner,omitempty"`
	Pending    *game.PendingPromotion `json:"pending_promotion,omitempty"`
	Plies      int                    `json:"plies"`
	Version    string                 `json:"version"`
}

// MoveResponse reports a move or promotion attempt.
type MoveResponse struct {
	Outcome   game.OutcomeKind `json:"outcome"`
	Captured  chess.Kind       `json:"captured,omitempty"`
	Castled   bool             `json:"castled,omitempty"`
	EnPassant bool             `json:"en_passant,omitempty"`
	Promotion chess.Kind       `json:"promotion,omitempty"`
	Error     string           `json:"error,omitempty"`
	State     GameState        `json:"state"`
}

// version is the state tag used for ETags: the position hash and the
// ply count, so a position reached again still gets a new tag.
func version(g *game.Game) string {
	pos := g.Position()
	return fmt.Sprintf("%016x-%d", hashing.Hash(&pos), g.Plies())
}

func stateOf(id string, g *game.Game) GameState {
	board := g.CurrentPosition()
	st := GameState{
		ID:         id,
		FEN:        g.FEN(),
		Board:      board.Rows(),
		SideToMove: g.SideToMove(),
		Status:     g.Status(),
		Over:       g.Over(),
		Plies:      g.Plies(),
		Version:    version(g),
	}
	if w, ok := g.Winner(); ok {
		st.Winner = &w
	}
	if p, ok := g.RequiresPromotionChoice(); ok {
		st.Pending = &p
	}
	return st
}

func moveResponse(id string, g *game.Game, o game.MoveOutcome) MoveResponse {
	return MoveResponse{
		Outcome:   o.Kind,
		Captured:  o.Captured.Kind,
		Castled:   o.Castled,
		EnPassant: o.EnPassant,
		Promotion: o.Promotion,
		State:     stateOf(id, g),
	}
}
