// Package game orchestrates a single chess game: it owns the position,
// enforces turn order and the promotion pause, and reports check and
// checkmate after every move.
package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is one game in progress. It is not safe for concurrent use.
type Game struct {
	pos     chess.Position
	status  engine.Status
	pending *PendingPromotion
	plies   int
}

// New starts a game from the standard position.
func New() *Game {
	g := &Game{pos: chess.NewInitialPosition()}
	g.status = engine.EvaluateStatus(&g.pos)
	return g
}

// NewFromFEN starts a game from a FEN position.
func NewFromFEN(fen string) (*Game, error) {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	g := &Game{pos: pos}
	g.status = engine.EvaluateStatus(&g.pos)
	return g, nil
}

// AttemptMove tries to move the piece on from to to.
//
// The position is left unchanged unless the outcome is Applied or
// PromotionRequired. After PromotionRequired the pawn stands on its last
// row and no further move is accepted until SupplyPromotionChoice.
func (g *Game) AttemptMove(from, to chess.Square) MoveOutcome {
	if g.Over() {
		return g.reject(RejectedGameOver)
	}
	if g.pending != nil {
		return g.reject(RejectedPromotionPending)
	}
	if !from.Valid() || !to.Valid() {
		return g.reject(RejectedIllegal)
	}

	piece := g.pos.Board.At(from)
	if piece.IsEmpty() {
		return g.reject(RejectedIllegal)
	}
	if piece.Colour != g.pos.ToMove {
		return g.reject(RejectedNotYourTurn)
	}
	if !engine.IsLegal(&g.pos, from, to, false) {
		return g.reject(RejectedIllegal)
	}

	res, err := engine.ApplyMove(&g.pos, from, to)
	if err != nil {
		return g.reject(RejectedIllegal)
	}
	g.plies++

	out := MoveOutcome{
		Captured:  res.Captured,
		Castled:   res.Castled,
		EnPassant: res.EnPassant,
	}
	if res.PromotionDue {
		g.pending = &PendingPromotion{Square: to, Colour: piece.Colour}
		out.Kind = PromotionRequired
		out.SideToMove = g.pos.ToMove
		out.Status = g.status
		return out
	}

	g.status = engine.EvaluateStatus(&g.pos)
	out.Kind = Applied
	out.SideToMove = g.pos.ToMove
	out.Status = g.status
	return out
}

// AttemptMoveAlgebraic is AttemptMove with algebraic square names.
// It returns an error only if a name cannot be parsed.
func (g *Game) AttemptMoveAlgebraic(from, to string) (MoveOutcome, error) {
	f, err := chess.ParseSquare(from)
	if err != nil {
		return g.reject(RejectedIllegal), err
	}
	t, err := chess.ParseSquare(to)
	if err != nil {
		return g.reject(RejectedIllegal), err
	}
	return g.AttemptMove(f, t), nil
}

// RequiresPromotionChoice reports the pawn awaiting a promotion choice.
func (g *Game) RequiresPromotionChoice() (PendingPromotion, bool) {
	if g.pending == nil {
		return PendingPromotion{}, false
	}
	return *g.pending, true
}

// SupplyPromotionChoice completes a pending promotion with kind.
func (g *Game) SupplyPromotionChoice(kind chess.Kind) MoveOutcome {
	if g.pending == nil {
		return g.reject(RejectedNoPromotionPending)
	}
	if !engine.ValidPromotion(kind) {
		return g.reject(RejectedInvalidPromotion)
	}
	if err := engine.Promote(&g.pos, g.pending.Square, kind); err != nil {
		return g.reject(RejectedInvalidPromotion)
	}
	g.pending = nil
	g.status = engine.EvaluateStatus(&g.pos)
	return MoveOutcome{
		Kind:       Applied,
		SideToMove: g.pos.ToMove,
		Status:     g.status,
		Promotion:  kind,
	}
}

// CurrentPosition returns a copy of the board for rendering.
func (g *Game) CurrentPosition() chess.Board {
	return g.pos.Board
}

// Position returns a copy of the full position.
func (g *Game) Position() chess.Position {
	return g.pos.Clone()
}

// FEN returns the position as a FEN string.
func (g *Game) FEN() string {
	return engine.PositionToFEN(&g.pos)
}

// LegalDestinations returns the squares the piece on from may move to.
// It is empty once the game is over or while a promotion is pending.
func (g *Game) LegalDestinations(from chess.Square) []chess.Square {
	if g.Over() || g.pending != nil {
		return nil
	}
	return engine.LegalDestinations(&g.pos, from)
}

// SideToMove returns the colour to move.
func (g *Game) SideToMove() chess.Colour {
	return g.pos.ToMove
}

// Status returns the check state of the side to move.
func (g *Game) Status() engine.Status {
	return g.status
}

// Over returns true once checkmate has been reached.
func (g *Game) Over() bool {
	return g.status == engine.Checkmate
}

// Winner returns the winning colour after checkmate.
func (g *Game) Winner() (chess.Colour, bool) {
	if !g.Over() {
		return chess.White, false
	}
	return g.pos.ToMove.Opposite(), true
}

// Plies returns the number of half-moves played in this game.
func (g *Game) Plies() int {
	return g.plies
}

func (g *Game) reject(kind OutcomeKind) MoveOutcome {
	return MoveOutcome{Kind: kind, SideToMove: g.pos.ToMove, Status: g.status}
}

// describe is used in error messages.
func (g *Game) describe() string {
	return fmt.Sprintf("%s to move, %s", g.pos.ToMove, g.status)
}

// ErrorFor wraps the outcome's sentinel with move context, or returns nil
// for a successful outcome.
func (g *Game) ErrorFor(o MoveOutcome, from, to string) error {
	err := o.Err()
	if err == nil {
		return nil
	}
	return &errors.MoveError{
		Err:  fmt.Errorf("%w (%s)", err, g.describe()),
		From: from,
		To:   to,
		Ply:  g.plies + 1,
	}
}
