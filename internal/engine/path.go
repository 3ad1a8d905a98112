package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsPathClear reports whether every square strictly between from and to
// is empty. The squares must share a row, column or diagonal; only
// bishops, rooks and queens consult it.
func IsPathClear(board *chess.Board, from, to chess.Square) bool {
	dr, dc := delta(from, to)
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return false
	}
	rowStep, colStep := sign(dr), sign(dc)

	if from == to {
		return true
	}
	sq := chess.Sq(from.Row+rowStep, from.Col+colStep)
	for sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq = chess.Sq(sq.Row+rowStep, sq.Col+colStep)
	}
	return true
}
