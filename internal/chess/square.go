package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square is a board coordinate. Row 0 is rank 8 and row 7 is rank 1;
// column 0 is the a-file. Both fields are always in [0,7]; anything else
// is a programming error and indexing a Board with it panics.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid returns true if both coordinates are on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// File returns the file letter ('a'-'h').
func (s Square) File() byte {
	return byte(FileBase + s.Col)
}

// Rank returns the rank digit ('1'-'8').
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// Offset returns the square displaced by (dr, dc) and whether it is on the board.
func (s Square) Offset(dr, dc int) (Square, bool) {
	t := Square{Row: s.Row + dr, Col: s.Col + dc}
	return t, t.Valid()
}

// MarshalText encodes the square as its algebraic name.
func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("square %v out of range: %w", s, errors.ErrInvalidSquare)
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes an algebraic square name.
func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// ParseSquare converts an algebraic name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, &errors.ParseError{
			Err: errors.ErrInvalidSquare, Input: name, Offset: -1,
			Expected: "file and rank",
		}
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' {
		return Square{}, &errors.ParseError{
			Err: errors.ErrInvalidSquare, Input: name, Offset: 0,
			Expected: "file a-h", Got: fmt.Sprintf("%q", file),
		}
	}
	if rank < '1' || rank > '8' {
		return Square{}, &errors.ParseError{
			Err: errors.ErrInvalidSquare, Input: name, Offset: 1,
			Expected: "rank 1-8", Got: fmt.Sprintf("%q", rank),
		}
	}
	return Square{
		Row: BoardSize - 1 - int(rank-RankBase),
		Col: int(file - FileBase),
	}, nil
}

// MustParseSquare is ParseSquare for constant names; it panics on error.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// AllSquares returns the 64 squares in row-major order (a8..h8, ..., a1..h1).
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			squares = append(squares, Square{Row: row, Col: col})
		}
	}
	return squares
}
