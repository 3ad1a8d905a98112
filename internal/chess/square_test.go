package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name string
		want Square
	}{
		{"a8", Square{Row: 0, Col: 0}},
		{"h8", Square{Row: 0, Col: 7}},
		{"a1", Square{Row: 7, Col: 0}},
		{"h1", Square{Row: 7, Col: 7}},
		{"e4", Square{Row: 4, Col: 4}},
		{"d5", Square{Row: 3, Col: 3}},
		{"E2", Square{Row: 6, Col: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSquare(tt.name)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, name := range []string{"", "e", "e44", "i1", "a0", "a9", "11", "zz"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseSquare(name)
			if err == nil {
				t.Fatalf("ParseSquare(%q) succeeded; want error", name)
			}
			if !errors.Is(err, chesserrors.ErrInvalidSquare) {
				t.Errorf("ParseSquare(%q) error = %v; want ErrInvalidSquare", name, err)
			}
		})
	}
}

func TestSquare_StringRoundTrip(t *testing.T) {
	for _, sq := range AllSquares() {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q) error: %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%v.String()) = %v", sq, got)
		}
	}
}

func TestSquare_Offset(t *testing.T) {
	e4 := MustParseSquare("e4")

	if got, ok := e4.Offset(-1, 1); !ok || got.String() != "f5" {
		t.Errorf("e4.Offset(-1, 1) = %v, %v; want f5, true", got, ok)
	}
	if _, ok := MustParseSquare("h1").Offset(0, 1); ok {
		t.Error("h1.Offset(0, 1) reported on-board")
	}
}

func TestSquare_Text(t *testing.T) {
	var sq Square
	if err := sq.UnmarshalText([]byte("g7")); err != nil {
		t.Fatalf("UnmarshalText error: %v", err)
	}
	text, err := sq.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText error: %v", err)
	}
	if string(text) != "g7" {
		t.Errorf("MarshalText() = %q; want g7", text)
	}

	if _, err := (Square{Row: 8, Col: 0}).MarshalText(); err == nil {
		t.Error("MarshalText on an off-board square succeeded")
	}
}

func TestAllSquares(t *testing.T) {
	squares := AllSquares()
	if len(squares) != 64 {
		t.Fatalf("len(AllSquares()) = %d; want 64", len(squares))
	}
	if squares[0].String() != "a8" || squares[63].String() != "h1" {
		t.Errorf("AllSquares order = %v..%v; want a8..h1", squares[0], squares[63])
	}
}
