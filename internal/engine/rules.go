package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsLegal reports whether the piece on from may move to to.
//
// The move must stay on distinct squares, start from an occupied square,
// not land on a piece of the mover's colour and satisfy the piece's
// geometry. Unless suppressCheckTest is set, the move is then played on a
// copy of pos, with the castling rook and en passant victim handled, and
// rejected if it leaves the mover's king attacked.
//
// IsLegal does not look at whose turn it is.
func IsLegal(pos *chess.Position, from, to chess.Square, suppressCheckTest bool) bool {
	if from == to || !from.Valid() || !to.Valid() {
		return false
	}

	piece := pos.Board.At(from)
	if piece.IsEmpty() {
		return false
	}

	target := pos.Board.At(to)
	if !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}

	if !ValidateGeometry(pos, piece, from, to, suppressCheckTest) {
		return false
	}

	if suppressCheckTest {
		return true
	}

	return !leavesKingInCheck(pos, piece, from, to)
}

// leavesKingInCheck plays the move on a copy of pos and reports whether
// the mover's king ends up attacked.
func leavesKingInCheck(pos *chess.Position, piece chess.Piece, from, to chess.Square) bool {
	sim := pos.Clone()
	applyMove(&sim, from, to)
	return IsInCheck(&sim, piece.Colour)
}
