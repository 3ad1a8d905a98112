package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsSquareAttacked returns true if any piece of colour byColour attacks sq.
//
// Pawns attack the two squares diagonally forward of them whether or not
// those squares are occupied. Every other piece attacks the squares it
// could move to geometrically in the current position, ignoring the
// self-check test. Castling never attacks anything.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byColour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Sq(row, col)
			piece := pos.Board.At(from)
			if piece.IsEmpty() || piece.Colour != byColour || from == sq {
				continue
			}
			if attacks(pos, piece, from, sq) {
				return true
			}
		}
	}
	return false
}

// attacks reports whether piece standing on from attacks target.
func attacks(pos *chess.Position, piece chess.Piece, from, target chess.Square) bool {
	if piece.Kind == chess.Pawn {
		dr, dc := delta(from, target)
		return dr == piece.Colour.Forward() && abs(dc) == 1
	}
	return ValidateGeometry(pos, piece, from, target, true)
}

// IsInCheck returns true if colour's king is attacked by the opponent.
// A position with no king of that colour is never in check.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king, ok := pos.Board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(pos, king, colour.Opposite())
}
