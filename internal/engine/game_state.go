package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Status is the check state of the side to move.
type Status int

const (
	Normal Status = iota
	Check
	Checkmate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	default:
		return "normal"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "normal":
		*s = Normal
	case "check":
		*s = Check
	case "checkmate":
		*s = Checkmate
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

// EvaluateStatus classifies the position for the side to move.
// A side with no legal moves that is not in check is reported Normal;
// stalemate is not detected.
func EvaluateStatus(pos *chess.Position) Status {
	return StatusFor(pos, pos.ToMove)
}

// StatusFor classifies the position for colour.
func StatusFor(pos *chess.Position, colour chess.Colour) Status {
	if !IsInCheck(pos, colour) {
		return Normal
	}
	if HasLegalMove(pos, colour) {
		return Check
	}
	return Checkmate
}

// IsCheckmate returns true if colour is in check with no legal move.
func IsCheckmate(pos *chess.Position, colour chess.Colour) bool {
	return StatusFor(pos, colour) == Checkmate
}
