package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Applied describes the side effects of executing one move.
type Applied struct {
	Piece      chess.Piece
	From       chess.Square
	To         chess.Square
	Captured   chess.Piece  // NoPiece if nothing was taken
	CapturedOn chess.Square // differs from To for en passant
	Castled    bool
	CastleSide chess.CastleSide
	EnPassant  bool
	// PromotionDue is set when a pawn has reached its promotion row and is
	// still a pawn. The caller must follow up with Promote.
	PromotionDue bool
}

// ApplyMove executes the move from from to to on pos without checking it
// for legality. Callers validate with IsLegal first.
//
// A two-column king move also moves the rook. A diagonal pawn move onto
// an empty square removes the pawn beside it. The castling flags, the
// last-move record and the side to move are updated.
func ApplyMove(pos *chess.Position, from, to chess.Square) (Applied, error) {
	if !from.Valid() || !to.Valid() {
		return Applied{}, &errors.MoveError{Err: errors.ErrInvalidSquare, From: from.String(), To: to.String()}
	}
	if pos.Board.IsEmpty(from) {
		return Applied{}, &errors.MoveError{Err: errors.ErrNoPiece, From: from.String(), To: to.String()}
	}
	return applyMove(pos, from, to), nil
}

// applyMove is the move primitive shared by ApplyMove and the self-check
// simulation. The origin must be occupied.
func applyMove(pos *chess.Position, from, to chess.Square) Applied {
	piece := pos.Board.At(from)
	res := Applied{Piece: piece, From: from, To: to, CapturedOn: to}

	switch {
	case isCastleShape(piece, from, to):
		res.Castled = true
		res.CastleSide = castleSideOf(from, to)
		applyCastleRook(pos, piece.Colour, res.CastleSide, to)
	case isEnPassantShape(&pos.Board, piece, from, to):
		victim := enPassantVictim(from, to)
		res.EnPassant = true
		res.CapturedOn = victim
		res.Captured = pos.Board.At(victim)
		pos.Board.Clear(victim)
	}

	if captured := pos.Board.Move(from, to); !captured.IsEmpty() {
		res.Captured = captured
	}

	pos.Rights.Touch(piece, from, to)
	pos.LastMove = &chess.LastMove{Piece: piece, From: from, To: to}
	pos.ToMove = piece.Colour.Opposite()
	res.PromotionDue = NeedsPromotion(piece, to)

	return res
}
