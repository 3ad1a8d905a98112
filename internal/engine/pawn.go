package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// enPassantRow returns the row a pawn of the given colour must stand on to
// capture en passant: row 3 (rank 5) for White, row 4 (rank 4) for Black.
func enPassantRow(colour chess.Colour) int {
	if colour == chess.White {
		return 3
	}
	return 4
}

// CanCaptureEnPassant reports whether a pawn of colour moving from from to
// the empty square to captures en passant. The immediately preceding move
// must have been an opposing pawn advancing two rows to land beside the
// capturing pawn, on to's file. Eligibility is never retained past that
// one move.
func CanCaptureEnPassant(colour chess.Colour, from, to chess.Square, lastMove *chess.LastMove) bool {
	if !lastMove.IsDoublePawnPush() || lastMove.Piece.Colour == colour {
		return false
	}
	if from.Row != enPassantRow(colour) {
		return false
	}
	dr, dc := delta(from, to)
	if dr != colour.Forward() || abs(dc) != 1 {
		return false
	}
	return lastMove.To.Row == from.Row && lastMove.To.Col == to.Col
}

// enPassantVictim returns the square of the pawn removed by an en passant
// capture from from to to: same file as the destination, same rank as the
// origin.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.Sq(from.Row, to.Col)
}

// isEnPassantShape reports whether a pawn move from from to to is a
// diagonal step onto an empty square, which can only be en passant.
func isEnPassantShape(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	return piece.Kind == chess.Pawn && from.Col != to.Col && board.IsEmpty(to)
}
