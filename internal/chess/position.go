package chess

// CastleSide selects kingside or queenside castling.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castling side.
func (s CastleSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

// KingHome returns the king's original square for a colour (e1 or e8).
func KingHome(colour Colour) Square {
	return Square{Row: colour.BackRow(), Col: 4}
}

// RookHome returns the original square of the rook on the given side
// (h-file for kingside, a-file for queenside).
func RookHome(colour Colour, side CastleSide) Square {
	if side == Kingside {
		return Square{Row: colour.BackRow(), Col: 7}
	}
	return Square{Row: colour.BackRow(), Col: 0}
}

// CastlingRights records, per colour, whether the king and each original
// rook have moved. Flags are monotonic: once set they are never cleared.
// Rooks are tracked by origin square, not identity.
type CastlingRights struct {
	KingMoved [NumColours]bool    `json:"king_moved"`
	RookMoved [NumColours][2]bool `json:"rook_moved"` // indexed by CastleSide
}

// NoCastlingRights has every king and rook marked as moved.
func NoCastlingRights() CastlingRights {
	return CastlingRights{
		KingMoved: [NumColours]bool{true, true},
		RookMoved: [NumColours][2]bool{{true, true}, {true, true}},
	}
}

// MarkKingMoved records that the colour's king has moved.
func (r *CastlingRights) MarkKingMoved(colour Colour) {
	r.KingMoved[colour] = true
}

// MarkRookMoved records that the rook from the given side's corner has
// moved or been captured.
func (r *CastlingRights) MarkRookMoved(colour Colour, side CastleSide) {
	r.RookMoved[colour][side] = true
}

// Available returns true if neither the king nor the rook on that side
// has moved. It says nothing about the position on the board.
func (r CastlingRights) Available(colour Colour, side CastleSide) bool {
	return !r.KingMoved[colour] && !r.RookMoved[colour][side]
}

// Touch updates the flags for piece moving from from to to. A king move
// marks its king, leaving a rook's home square marks that rook, and
// landing on a rook's home square marks that rook as gone.
func (r *CastlingRights) Touch(piece Piece, from, to Square) {
	if piece.Kind == King {
		r.MarkKingMoved(piece.Colour)
	}
	for c := White; c <= Black; c++ {
		for side := Kingside; side <= Queenside; side++ {
			home := RookHome(c, side)
			if from == home || to == home {
				r.MarkRookMoved(c, side)
			}
		}
	}
}

// LastMove is the record of the most recent half-move.
// It exists to decide en passant eligibility.
type LastMove struct {
	Piece Piece  `json:"piece"`
	From  Square `json:"from"`
	To    Square `json:"to"`
}

// IsDoublePawnPush returns true if the move was a pawn advancing two rows.
func (m *LastMove) IsDoublePawnPush() bool {
	if m == nil || m.Piece.Kind != Pawn || m.From.Col != m.To.Col {
		return false
	}
	d := m.To.Row - m.From.Row
	return d == 2 || d == -2
}

// Position is the game position aggregate: the board, castling rights,
// the last-move record and the side to move. It is a plain value;
// copying a Position copies the board.
type Position struct {
	Board    Board
	Rights   CastlingRights
	LastMove *LastMove
	ToMove   Colour
}

// NewInitialPosition returns the standard starting position, White to move.
func NewInitialPosition() Position {
	return Position{
		Board:  InitialBoard(),
		ToMove: White,
	}
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() Position {
	c := *p
	if p.LastMove != nil {
		lm := *p.LastMove
		c.LastMove = &lm
	}
	return c
}
