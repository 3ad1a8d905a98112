package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is a fully specified move. Promotion is NoKind unless a pawn
// reaches its last row.
type Move struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.Promotion == chess.NoKind {
		return m.From.String() + m.To.String()
	}
	return fmt.Sprintf("%s%s%c", m.From, m.To, m.Promotion.Letter()+('a'-'A'))
}

// MarshalText implements encoding.TextMarshaler.
func (m Move) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Move) UnmarshalText(text []byte) error {
	mv, err := ParseMove(string(text))
	if err != nil {
		return err
	}
	*m = mv
	return nil
}

// ParseMove parses a coordinate move such as "e2e4" or "e7e8q".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, &errors.ParseError{Err: errors.ErrIllegalMove, Input: s, Offset: -1, Expected: "coordinate move"}
	}
	from, err := chess.ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := chess.ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		m.Promotion = chess.KindFromLetter(s[4])
		if !ValidPromotion(m.Promotion) {
			return Move{}, &errors.ParseError{
				Err: errors.ErrInvalidPromotion, Input: s, Offset: 4,
				Expected: "q, r, b or n", Got: fmt.Sprintf("%q", s[4]),
			}
		}
	}
	return m, nil
}

// LegalDestinations returns every square the piece on from may legally
// move to, in row-major order (a8 first). It returns nil for an empty
// square. Turn order is not considered.
func LegalDestinations(pos *chess.Position, from chess.Square) []chess.Square {
	if !from.Valid() || pos.Board.IsEmpty(from) {
		return nil
	}
	var dests []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if to != from && IsLegal(pos, from, to, false) {
				dests = append(dests, to)
			}
		}
	}
	return dests
}

// LegalMoves returns all legal moves for colour. A pawn reaching its last
// row yields one move per promotion choice.
func LegalMoves(pos *chess.Position, colour chess.Colour) []Move {
	var moves []Move
	forEachOwnPiece(pos, colour, func(from chess.Square, piece chess.Piece) bool {
		for _, to := range LegalDestinations(pos, from) {
			if NeedsPromotion(piece, to) {
				for _, kind := range promotionChoices {
					moves = append(moves, Move{From: from, To: to, Promotion: kind})
				}
				continue
			}
			moves = append(moves, Move{From: from, To: to})
		}
		return true
	})
	return moves
}

// HasLegalMove returns true if colour has at least one legal move.
// It stops at the first one found.
func HasLegalMove(pos *chess.Position, colour chess.Colour) bool {
	found := false
	forEachOwnPiece(pos, colour, func(from chess.Square, _ chess.Piece) bool {
		for row := 0; row < chess.BoardSize; row++ {
			for col := 0; col < chess.BoardSize; col++ {
				if IsLegal(pos, from, chess.Sq(row, col), false) {
					found = true
					return false
				}
			}
		}
		return true
	})
	return found
}

// forEachOwnPiece calls fn for each square holding a piece of colour,
// in row-major order, until fn returns false.
func forEachOwnPiece(pos *chess.Position, colour chess.Colour, fn func(chess.Square, chess.Piece) bool) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			piece := pos.Board.At(sq)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			if !fn(sq, piece) {
				return
			}
		}
	}
}
