package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func sq(name string) chess.Square {
	return chess.MustParseSquare(name)
}

func mustFEN(t *testing.T, fen string) chess.Position {
	t.Helper()
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return pos
}

func TestIsLegal(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		to   string
		want bool
	}{
		// Pawns
		{"pawn single push", InitialFEN, "e2", "e3", true},
		{"pawn double push", InitialFEN, "e2", "e4", true},
		{"pawn triple push", InitialFEN, "e2", "e5", false},
		{"pawn backwards", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", "e4", "e3", false},
		{"pawn double push off start row", "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1", "e3", "e5", false},
		{"pawn double push blocked on first square", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", "e4", false},
		{"pawn double push blocked on landing", "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1", "e2", "e4", false},
		{"pawn push onto piece", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", "e3", false},
		{"pawn diagonal capture", "4k3/8/8/8/8/3n4/4P3/4K3 w - - 0 1", "e2", "d3", true},
		{"pawn diagonal to empty", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", "e2", "d3", false},
		{"black pawn push", InitialFEN, "d7", "d5", true},
		{"black pawn wrong direction", "4k3/8/8/3p4/8/8/8/4K3 b - - 0 1", "d5", "d6", false},

		// Knights
		{"knight jump over pawns", InitialFEN, "g1", "f3", true},
		{"knight jump wrong shape", InitialFEN, "g1", "g3", false},
		{"knight onto own piece", InitialFEN, "g1", "e2", false},

		// Sliders
		{"bishop blocked", InitialFEN, "c1", "e3", false},
		{"bishop open diagonal", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "c1", "h6", true},
		{"bishop straight", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", "c1", "c4", false},
		{"rook file", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a8", true},
		{"rook diagonal", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "b2", false},
		{"rook through king", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "f1", false},
		{"queen diagonal capture", "4k3/8/8/7r/8/8/8/3QK3 w - - 0 1", "d1", "h5", true},
		{"queen rank", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d1", "a1", true},
		{"queen knight shape", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", "d1", "e3", false},

		// Kings
		{"king step", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e1", "d2", true},
		{"king two squares off home", "4k3/8/8/8/8/3K4/8/8 w - - 0 1", "d3", "f3", false},
		{"king onto attacked square", "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", "e1", "e2", false},
		{"king captures defended rook", "4k3/8/8/8/8/3b4/4r3/4K3 w - - 0 1", "e1", "e2", false},
		{"king captures undefended rook", "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", "e1", "e2", true},

		// Self check
		{"pinned knight", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", "e2", "c3", false},
		{"pinned rook along pin", "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1", "e2", "e5", true},
		{"ignore check", "4k3/4r3/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a2", false},
		{"rook does not block check", "4k3/4r3/8/8/8/8/8/3RK3 w - - 0 1", "d1", "d2", false},
		{"rook blocks check", "4k3/4r3/8/8/8/8/3R4/4K3 w - - 0 1", "d2", "e2", true},
		{"capture checker", "4k3/8/8/8/8/8/4r3/R3K2R w - - 0 1", "e1", "e2", true},

		// Basic rejections
		{"empty origin", InitialFEN, "e4", "e5", false},
		{"same square", InitialFEN, "e2", "e2", false},
		{"own piece destination", InitialFEN, "a1", "a2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustFEN(t, tt.fen)
			if got := IsLegal(&pos, sq(tt.from), sq(tt.to), false); got != tt.want {
				t.Errorf("IsLegal(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsLegal_SuppressCheckTest(t *testing.T) {
	// The knight is pinned; with the check test suppressed only geometry counts.
	pos := mustFEN(t, "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1")
	if IsLegal(&pos, sq("e2"), sq("c3"), false) {
		t.Error("pinned knight move should be illegal")
	}
	if !IsLegal(&pos, sq("e2"), sq("c3"), true) {
		t.Error("pinned knight move should pass geometry with check test suppressed")
	}

	// Castling is never valid in suppressed mode.
	pos = mustFEN(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if !IsLegal(&pos, sq("e1"), sq("g1"), false) {
		t.Error("castling should be legal")
	}
	if IsLegal(&pos, sq("e1"), sq("g1"), true) {
		t.Error("castling should be rejected with check test suppressed")
	}
}

func TestIsLegal_DoesNotMutate(t *testing.T) {
	pos := mustFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := pos.Clone()
	for _, from := range chess.AllSquares() {
		for _, to := range chess.AllSquares() {
			IsLegal(&pos, from, to, false)
		}
	}
	if pos.Board != before.Board || pos.Rights != before.Rights || pos.ToMove != before.ToMove {
		t.Error("IsLegal modified the position")
	}
}

func TestCanCastle(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		side   chess.CastleSide
		want   bool
	}{
		{"white kingside clear", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.White, chess.Kingside, true},
		{"white queenside clear", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", chess.White, chess.Queenside, true},
		{"black kingside clear", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", chess.Black, chess.Kingside, true},
		{"black queenside clear", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", chess.Black, chess.Queenside, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", chess.White, chess.Kingside, false},
		{"only queenside right", "r3k2r/8/8/8/8/8/8/R3K2R w Q - 0 1", chess.White, chess.Kingside, false},
		{"piece between", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", chess.White, chess.Kingside, false},
		{"b-file occupied", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", chess.White, chess.Queenside, false},
		{"in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", chess.White, chess.Kingside, false},
		{"transit square attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQ - 0 1", chess.White, chess.Kingside, false},
		{"landing square attacked", "r3k2r/8/8/8/8/8/6r1/R3K2R w KQ - 0 1", chess.White, chess.Kingside, false},
		{"rook attacked only", "4k3/8/8/8/8/8/7r/R3K2R w KQ - 0 1", chess.White, chess.Kingside, true},
		{"b-file attacked only", "4k3/8/8/8/8/8/1r6/R3K2R w KQ - 0 1", chess.White, chess.Queenside, true},
		{"pawn attacks transit square", "4k3/8/8/8/8/8/6p1/R3K2R w KQ - 0 1", chess.White, chess.Kingside, false},
		{"rook missing", "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1", chess.White, chess.Kingside, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustFEN(t, tt.fen)
			if got := CanCastle(&pos, tt.colour, tt.side); got != tt.want {
				t.Errorf("CanCastle(%v, %v) = %v, want %v", tt.colour, tt.side, got, tt.want)
			}
		})
	}
}

func TestCanCastle_AfterRookMovesBack(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	for _, m := range []string{"h1h2", "e8d8", "h2h1", "d8e8"} {
		if _, err := Play(&pos, Move{From: sq(m[:2]), To: sq(m[2:])}); err != nil {
			t.Fatalf("Play(%s) error: %v", m, err)
		}
	}
	if CanCastle(&pos, chess.White, chess.Kingside) {
		t.Error("castling allowed after rook returned to its home square")
	}
}

func TestCanCaptureEnPassant(t *testing.T) {
	doublePush := &chess.LastMove{Piece: chess.B(chess.Pawn), From: sq("d7"), To: sq("d5")}
	singlePush := &chess.LastMove{Piece: chess.B(chess.Pawn), From: sq("d6"), To: sq("d5")}
	ownPush := &chess.LastMove{Piece: chess.W(chess.Pawn), From: sq("d2"), To: sq("d4")}

	tests := []struct {
		name string
		from string
		to   string
		last *chess.LastMove
		want bool
	}{
		{"after double push", "e5", "d6", doublePush, true},
		{"from the other side", "c5", "d6", doublePush, true},
		{"wrong file", "e5", "f6", doublePush, false},
		{"after single push", "e5", "d6", singlePush, false},
		{"no last move", "e5", "d6", nil, false},
		{"own pawn pushed", "e5", "d6", ownPush, false},
		{"wrong row", "e4", "d5", doublePush, false},
		{"not adjacent", "f5", "d6", doublePush, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCaptureEnPassant(chess.White, sq(tt.from), sq(tt.to), tt.last); got != tt.want {
				t.Errorf("CanCaptureEnPassant(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCanCaptureEnPassant_Black(t *testing.T) {
	last := &chess.LastMove{Piece: chess.W(chess.Pawn), From: sq("e2"), To: sq("e4")}
	if !CanCaptureEnPassant(chess.Black, sq("d4"), sq("e3"), last) {
		t.Error("black d4xe3 should capture en passant")
	}
	if CanCaptureEnPassant(chess.Black, sq("d5"), sq("e4"), last) {
		t.Error("black pawn on rank 5 cannot capture en passant")
	}
}

func TestEnPassant_ExpiresAfterOneMove(t *testing.T) {
	pos := mustFEN(t, "4k3/3p4/8/4P3/8/8/8/R3K3 b - - 0 1")
	for _, m := range []Move{
		{From: sq("d7"), To: sq("d5")},
		{From: sq("a1"), To: sq("a2")},
		{From: sq("e8"), To: sq("f8")},
	} {
		if _, err := Play(&pos, m); err != nil {
			t.Fatalf("Play(%v) error: %v", m, err)
		}
	}
	if IsLegal(&pos, sq("e5"), sq("d6"), false) {
		t.Error("en passant still allowed after an intervening move")
	}
}

func TestEnPassant_DiscoveredCheck(t *testing.T) {
	// Removing both pawns from the fifth rank would expose the king to the rook.
	pos := mustFEN(t, "4k3/8/8/K2pP2r/8/8/8/8 w - d6 0 1")
	if IsLegal(&pos, sq("e5"), sq("d6"), false) {
		t.Error("en passant that exposes the king should be illegal")
	}
	if !IsLegal(&pos, sq("e5"), sq("e6"), false) {
		t.Error("pawn push should be legal")
	}
}

func TestIsSquareAttacked(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		sq   string
		by   chess.Colour
		want bool
	}{
		{"pawn attacks diagonal", "4k3/8/8/8/8/8/3P4/4K3 w - - 0 1", "e3", chess.White, true},
		{"pawn does not attack forward", "4k3/8/8/8/8/8/3P4/4K3 w - - 0 1", "d3", chess.White, false},
		{"black pawn attacks downwards", "4k3/8/3p4/8/8/8/8/4K3 w - - 0 1", "c5", chess.Black, true},
		{"black pawn does not attack up", "4k3/8/3p4/8/8/8/8/4K3 w - - 0 1", "c7", chess.Black, false},
		{"rook attacks own piece square", "4k3/8/8/8/8/8/8/R2NK3 w - - 0 1", "d1", chess.White, true},
		{"rook blocked", "4k3/8/8/8/8/8/8/R2NK3 w - - 0 1", "e1", chess.White, false},
		{"knight", "4k3/8/8/8/8/8/8/1N2K3 w - - 0 1", "c3", chess.White, true},
		{"king adjacent", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "d2", chess.White, true},
		{"king two away", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "g1", chess.White, false},
		{"pinned piece still attacks", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", "c3", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustFEN(t, tt.fen)
			if got := IsSquareAttacked(&pos, sq(tt.sq), tt.by); got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.sq, tt.by, got, tt.want)
			}
		})
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial", InitialFEN, chess.White, false},
		{"rook check", "4k3/8/8/8/8/8/8/R3K2r w - - 0 1", chess.White, true},
		{"pawn check", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"knight check", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"blocked bishop", "4k3/8/8/b7/8/2P5/8/4K3 w - - 0 1", chess.White, false},
		{"no king", "4k3/8/8/8/8/8/8/r7 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pos := mustFEN(t, tt.fen)
			if got := IsInCheck(&pos, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsPathClear(t *testing.T) {
	pos := mustFEN(t, InitialFEN)
	tests := []struct {
		from, to string
		want     bool
	}{
		{"a1", "a2", true},
		{"a1", "a3", false},
		{"a2", "a6", true},
		{"c1", "a3", false},
		{"b2", "h8", false},
		{"b3", "f7", true},
		{"a3", "h3", true},
		{"a1", "b3", false},
	}
	for _, tt := range tests {
		if got := IsPathClear(&pos.Board, sq(tt.from), sq(tt.to)); got != tt.want {
			t.Errorf("IsPathClear(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
