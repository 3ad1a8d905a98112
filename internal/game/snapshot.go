package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Snapshot is the persisted form of a game.
type Snapshot struct {
	FEN     string            `json:"fen"`
	Pending *PendingPromotion `json:"pending,omitempty"`
	Status  engine.Status     `json:"status"`
	Plies   int               `json:"plies"`
	Hash    uint64            `json:"hash"`
}

// Snapshot captures the game so it can be restored later.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		FEN:    g.FEN(),
		Status: g.status,
		Plies:  g.plies,
		Hash:   hashing.Hash(&g.pos),
	}
	if g.pending != nil {
		p := *g.pending
		s.Pending = &p
	}
	return s
}

// Restore rebuilds a game from a snapshot. The position hash must match
// the stored one. Status is recomputed unless a promotion is pending, in
// which case the stored status is kept.
func Restore(s Snapshot) (*Game, error) {
	pos, err := engine.NewPositionFromFEN(s.FEN)
	if err != nil {
		return nil, fmt.Errorf("restore: %w: %w", errors.ErrCorruptSnapshot, err)
	}
	if h := hashing.Hash(&pos); h != s.Hash {
		return nil, fmt.Errorf("restore: hash %016x, stored %016x: %w", h, s.Hash, errors.ErrCorruptSnapshot)
	}
	if s.Plies < 0 {
		return nil, fmt.Errorf("restore: negative ply count: %w", errors.ErrCorruptSnapshot)
	}

	g := &Game{pos: pos, plies: s.Plies}
	if s.Pending == nil {
		g.status = engine.EvaluateStatus(&g.pos)
		return g, nil
	}

	p := *s.Pending
	if !p.Square.Valid() || !g.pos.Board.At(p.Square).Is(p.Colour, chess.Pawn) || p.Square.Row != p.Colour.PromotionRow() {
		return nil, fmt.Errorf("restore: no pawn awaiting promotion on %s: %w", p.Square, errors.ErrCorruptSnapshot)
	}
	g.pending = &p
	g.status = s.Status
	return g, nil
}
