package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Play applies a fully specified move, including the promotion choice,
// after checking it is legal for the side to move.
func Play(pos *chess.Position, m Move) (Applied, error) {
	piece := pos.Board.At(m.From)
	if piece.IsEmpty() {
		return Applied{}, &errors.MoveError{Err: errors.ErrNoPiece, From: m.From.String(), To: m.To.String()}
	}
	if piece.Colour != pos.ToMove {
		return Applied{}, &errors.MoveError{Err: errors.ErrNotYourTurn, From: m.From.String(), To: m.To.String()}
	}
	if !IsLegal(pos, m.From, m.To, false) {
		return Applied{}, &errors.MoveError{Err: errors.ErrIllegalMove, From: m.From.String(), To: m.To.String()}
	}
	if NeedsPromotion(piece, m.To) && !ValidPromotion(m.Promotion) {
		return Applied{}, &errors.MoveError{
			Err:  fmt.Errorf("promotion to %v: %w", m.Promotion, errors.ErrInvalidPromotion),
			From: m.From.String(), To: m.To.String(),
		}
	}

	res := applyMove(pos, m.From, m.To)
	if res.PromotionDue {
		if err := Promote(pos, m.To, m.Promotion); err != nil {
			return res, err
		}
		res.PromotionDue = false
	}
	return res, nil
}

// Perft counts the leaf nodes of the legal move tree of the given depth
// from pos, with promotions counted once per choice. It is used to check
// move generation against published counts.
func Perft(pos *chess.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos, pos.ToMove)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := pos.Clone()
		playUnchecked(&child, m)
		nodes += Perft(&child, depth-1)
	}
	return nodes
}

// PerftCache stores subtree node counts between Perft calls.
type PerftCache interface {
	Probe(pos *chess.Position, depth int) (uint64, bool)
	Record(pos *chess.Position, depth int, nodes uint64)
}

// PerftCached is Perft with subtree counts of depth 2 and above looked up
// in and recorded to cache.
func PerftCached(pos *chess.Position, depth int, cache PerftCache) uint64 {
	if depth <= 1 || cache == nil {
		return Perft(pos, depth)
	}
	if n, ok := cache.Probe(pos, depth); ok {
		return n
	}

	var nodes uint64
	for _, m := range LegalMoves(pos, pos.ToMove) {
		child := pos.Clone()
		playUnchecked(&child, m)
		nodes += PerftCached(&child, depth-1, cache)
	}
	cache.Record(pos, depth, nodes)
	return nodes
}

// Divide returns the perft count below each root move.
func Divide(pos *chess.Position, depth int) map[Move]uint64 {
	counts := make(map[Move]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range LegalMoves(pos, pos.ToMove) {
		child := pos.Clone()
		playUnchecked(&child, m)
		counts[m] = Perft(&child, depth-1)
	}
	return counts
}

// playUnchecked applies a move already known to be legal.
func playUnchecked(pos *chess.Position, m Move) {
	res := applyMove(pos, m.From, m.To)
	if res.PromotionDue {
		pos.Board.Set(m.To, chess.Piece{Colour: res.Piece.Colour, Kind: m.Promotion})
	}
}

// Child returns a copy of pos with the legal move m played.
func Child(pos *chess.Position, m Move) chess.Position {
	child := pos.Clone()
	playUnchecked(&child, m)
	return child
}
