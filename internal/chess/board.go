package chess

import "strings"

// Board is the 8x8 grid of squares, indexed [row][col].
// It is a value type: assigning a Board copies every square.
type Board [BoardSize][BoardSize]Piece

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// backRank lists the standard piece order from the a-file to the h-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// InitialBoard returns the standard chess starting position.
func InitialBoard() Board {
	var b Board
	for col := 0; col < BoardSize; col++ {
		b[0][col] = B(backRank[col])
		b[1][col] = B(Pawn)
		b[6][col] = W(Pawn)
		b[7][col] = W(backRank[col])
	}
	return b
}

// At returns the piece on the square.
func (b *Board) At(sq Square) Piece {
	return b[sq.Row][sq.Col]
}

// IsEmpty returns true if nothing stands on the square.
func (b *Board) IsEmpty(sq Square) bool {
	return b[sq.Row][sq.Col].IsEmpty()
}

// Set places a piece on the square.
func (b *Board) Set(sq Square, p Piece) {
	b[sq.Row][sq.Col] = p
}

// Clear empties the square.
func (b *Board) Clear(sq Square) {
	b[sq.Row][sq.Col] = NoPiece
}

// Move relocates whatever stands on from to to, returning the piece that
// was on to. It does no rule checking.
func (b *Board) Move(from, to Square) Piece {
	captured := b.At(to)
	b.Set(to, b.At(from))
	b.Clear(from)
	return captured
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col].Is(colour, King) {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// Count returns the number of pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				n++
			}
		}
	}
	return n
}

// Rows returns the board as eight strings of FEN letters, rank 8 first,
// with '.' for empty squares.
func (b *Board) Rows() []string {
	rows := make([]string, BoardSize)
	for row := 0; row < BoardSize; row++ {
		var sb strings.Builder
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b[row][col].Letter())
		}
		rows[row] = sb.String()
	}
	return rows
}

// String draws the board with rank and file labels.
func (b *Board) String() string {
	var sb strings.Builder
	for row, line := range b.Rows() {
		sb.WriteByte(byte(RankBase + BoardSize - 1 - row))
		sb.WriteByte(' ')
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}
