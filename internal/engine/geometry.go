package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// ValidateGeometry reports whether piece may travel from from to to under
// its movement rules: shape, path obstruction, pawn capture rules, and the
// castling and en passant special cases. It does not test for self-check
// and does not reject same-colour destinations; IsLegal does both.
//
// With suppressCheckTest set the king's castling pattern is never valid.
// Castling cannot capture, so it is irrelevant to attack detection, and
// excluding it keeps attack queries from recursing into castling checks.
func ValidateGeometry(pos *chess.Position, piece chess.Piece, from, to chess.Square, suppressCheckTest bool) bool {
	if from == to {
		return false
	}

	switch piece.Kind {
	case chess.Pawn:
		return validatePawnMove(pos, piece.Colour, from, to)
	case chess.Knight:
		return validateKnightMove(from, to)
	case chess.Bishop:
		return validateBishopMove(&pos.Board, from, to)
	case chess.Rook:
		return validateRookMove(&pos.Board, from, to)
	case chess.Queen:
		return validateQueenMove(&pos.Board, from, to)
	case chess.King:
		return validateKingMove(pos, piece.Colour, from, to, suppressCheckTest)
	}

	return false
}

// validatePawnMove checks pushes, double pushes from the start row,
// diagonal captures and en passant.
func validatePawnMove(pos *chess.Position, colour chess.Colour, from, to chess.Square) bool {
	dir := colour.Forward()
	dr, dc := delta(from, to)
	target := pos.Board.At(to)

	if dc == 0 {
		if dr == dir && target.IsEmpty() {
			return true
		}
		if from.Row == colour.PawnStartRow() && dr == 2*dir && target.IsEmpty() &&
			pos.Board.IsEmpty(chess.Sq(from.Row+dir, from.Col)) {
			return true
		}
		return false
	}

	if abs(dc) == 1 && dr == dir {
		if !target.IsEmpty() {
			return target.Colour != colour
		}
		return CanCaptureEnPassant(colour, from, to, pos.LastMove)
	}

	return false
}

func validateKnightMove(from, to chess.Square) bool {
	dr, dc := delta(from, to)
	rowDiff, colDiff := abs(dr), abs(dc)
	return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)
}

func validateBishopMove(board *chess.Board, from, to chess.Square) bool {
	dr, dc := delta(from, to)
	if abs(dr) != abs(dc) || dr == 0 {
		return false
	}
	return IsPathClear(board, from, to)
}

func validateRookMove(board *chess.Board, from, to chess.Square) bool {
	dr, dc := delta(from, to)
	if (dr == 0) == (dc == 0) {
		return false
	}
	return IsPathClear(board, from, to)
}

func validateQueenMove(board *chess.Board, from, to chess.Square) bool {
	return validateBishopMove(board, from, to) || validateRookMove(board, from, to)
}

// validateKingMove accepts one step in any direction, or a two-column
// step along the rank that the castling resolver approves.
func validateKingMove(pos *chess.Position, colour chess.Colour, from, to chess.Square, suppressCheckTest bool) bool {
	dr, dc := delta(from, to)
	if abs(dr) <= 1 && abs(dc) <= 1 {
		return true
	}

	if dr == 0 && abs(dc) == 2 && !suppressCheckTest {
		if from != chess.KingHome(colour) {
			return false
		}
		side := chess.Kingside
		if dc < 0 {
			side = chess.Queenside
		}
		return CanCastle(pos, colour, side)
	}

	return false
}
