package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MustPosition parses a FEN string and returns the position.
// It calls t.Fatal if the FEN is invalid.
func MustPosition(t *testing.T, fen string) chess.Position {
	t.Helper()
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) failed: %v", fen, err)
	}
	return pos
}

// MustSquare parses an algebraic square name.
// It calls t.Fatal if the name is invalid.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", name, err)
	}
	return sq
}

// ParseMove parses a coordinate move such as "e2e4" or "e7e8q".
// It calls t.Fatal if the move is malformed.
func ParseMove(t *testing.T, s string) engine.Move {
	t.Helper()
	m, err := engine.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q) failed: %v", s, err)
	}
	return m
}

// PlayLine plays a space separated sequence of coordinate moves on pos.
// It calls t.Fatal on the first move that is rejected.
func PlayLine(t *testing.T, pos *chess.Position, line string) {
	t.Helper()
	for i, s := range strings.Fields(line) {
		if _, err := engine.Play(pos, ParseMove(t, s)); err != nil {
			t.Fatalf("move %d (%s): %v", i+1, s, err)
		}
	}
}

// SquareNames converts squares to their algebraic names.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}
