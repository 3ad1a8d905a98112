package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CanCastle reports whether colour may castle on the given side:
//  1. the king has not moved and stands on its home square;
//  2. the rook on that side has not moved and stands on its home square;
//  3. every square strictly between king and rook is empty;
//  4. the king's square and the two squares it crosses or lands on are
//     not attacked by the opponent.
func CanCastle(pos *chess.Position, colour chess.Colour, side chess.CastleSide) bool {
	if !pos.Rights.Available(colour, side) {
		return false
	}

	kingSq := chess.KingHome(colour)
	rookSq := chess.RookHome(colour, side)
	if !pos.Board.At(kingSq).Is(colour, chess.King) || !pos.Board.At(rookSq).Is(colour, chess.Rook) {
		return false
	}

	if !IsPathClear(&pos.Board, kingSq, rookSq) {
		return false
	}

	step := castleStep(side)
	opponent := colour.Opposite()
	for i := 0; i <= 2; i++ {
		if IsSquareAttacked(pos, chess.Sq(kingSq.Row, kingSq.Col+i*step), opponent) {
			return false
		}
	}

	return true
}

// castleStep returns the column direction the king travels when castling.
func castleStep(side chess.CastleSide) int {
	if side == chess.Kingside {
		return 1
	}
	return -1
}

// castleSideOf returns the side of a two-column king move.
func castleSideOf(from, to chess.Square) chess.CastleSide {
	if to.Col > from.Col {
		return chess.Kingside
	}
	return chess.Queenside
}

// isCastleShape reports whether a king move is the two-column castling step.
func isCastleShape(piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.King && from.Row == to.Row && abs(to.Col-from.Col) == 2
}

// applyCastleRook moves the castling rook from its home corner to the
// square beside the king's destination, on the king's inner side. The
// kingside rook travels two squares and the queenside rook three.
func applyCastleRook(pos *chess.Position, colour chess.Colour, side chess.CastleSide, kingTo chess.Square) {
	rookFrom := chess.RookHome(colour, side)
	rookTo := chess.Sq(kingTo.Row, kingTo.Col-castleStep(side))
	pos.Board.Move(rookFrom, rookTo)
	pos.Rights.MarkRookMoved(colour, side)
}
