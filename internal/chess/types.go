// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// NumColours is the number of colours, for arrays indexed by Colour.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// MarshalText encodes the colour as "white" or "black".
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(c.String())), nil
}

// UnmarshalText decodes "white" or "black" in any case.
func (c *Colour) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "white", "w":
		*c = White
	case "black", "b":
		*c = Black
	default:
		return fmt.Errorf("colour %q: %w", text, errors.ErrInvalidColour)
	}
	return nil
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn advance: -1 for White (towards
// row 0, rank 8), +1 for Black.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row on which the colour's pawns start.
func (c Colour) PawnStartRow() int {
	if c == White {
		return 6
	}
	return 1
}

// BackRow returns the row of the colour's own back rank (row 7 for White).
func (c Colour) BackRow() int {
	if c == White {
		return 7
	}
	return 0
}

// PromotionRow returns the row on which the colour's pawns promote.
func (c Colour) PromotionRow() int {
	return c.Opposite().BackRow()
}

// Kind represents a chess piece type.
type Kind int

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// MarshalText encodes the kind as its lowercase name, e.g. "queen".
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(k.String())), nil
}

// UnmarshalText decodes a kind name or letter. The empty string and
// "none" decode to NoKind.
func (k *Kind) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" || strings.EqualFold(s, "none") {
		*k = NoKind
		return nil
	}
	kind := ParseKind(s)
	if kind == NoKind {
		return fmt.Errorf("piece kind %q: %w", s, errors.ErrInvalidPromotion)
	}
	*k = kind
	return nil
}

// KindFromLetter converts a piece letter (either case) to a Kind.
// NoKind is returned for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// ParseKind converts a kind name ("queen", "Knight") or letter ("q") to a Kind.
func ParseKind(s string) Kind {
	if len(s) == 1 {
		return KindFromLetter(s[0])
	}
	for k := Pawn; k < NumKinds; k++ {
		if strings.EqualFold(k.String(), s) {
			return k
		}
	}
	return NoKind
}

// Piece is a coloured piece. The zero value is an empty square.
// Pieces are values: identity is whatever occupies a square.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// IsEmpty returns true if the piece is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is returns true if p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the FEN letter of a piece: uppercase for White,
// lowercase for Black, '.' for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns a short representation such as "wK" or "bP".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "--"
	}
	c := byte('w')
	if p.Colour == Black {
		c = 'b'
	}
	return string([]byte{c, p.Kind.Letter()})
}

// PieceFromLetter converts a FEN letter to a piece.
// It returns NoPiece for anything else.
func PieceFromLetter(c byte) Piece {
	kind := KindFromLetter(c)
	if kind == NoKind {
		return NoPiece
	}
	if c >= 'a' && c <= 'z' {
		return B(kind)
	}
	return W(kind)
}
