package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNotYourTurn", ErrNotYourTurn, ErrNotYourTurn},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrPromotionPending", ErrPromotionPending, ErrPromotionPending},
		{"ErrNoPromotionPending", ErrNoPromotionPending, ErrNoPromotionPending},
		{"ErrInvalidPromotion", ErrInvalidPromotion, ErrInvalidPromotion},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrNoPiece", ErrNoPiece, ErrNoPiece},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrGameNotFound", ErrGameNotFound, ErrGameNotFound},
		{"ErrStorage", ErrStorage, ErrStorage},
		{"ErrInvalidColour", ErrInvalidColour, ErrInvalidColour},
		{"ErrCorruptSnapshot", ErrCorruptSnapshot, ErrCorruptSnapshot},
		{"ErrTooManyGames", ErrTooManyGames, ErrTooManyGames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrNotYourTurn) {
		t.Error("ErrIllegalMove should not match ErrNotYourTurn")
	}
	if errors.Is(ErrGameOver, ErrIllegalMove) {
		t.Error("ErrGameOver should not match ErrIllegalMove")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name:     "full context",
			err:      &MoveError{Err: ErrIllegalMove, From: "e2", To: "e5", Ply: 3},
			contains: []string{"ply 3", "e2-e5", "illegal move"},
		},
		{
			name:     "origin only",
			err:      &MoveError{Err: ErrNoPiece, From: "d4"},
			contains: []string{"from d4", "no piece"},
		},
		{
			name:     "no context",
			err:      &MoveError{Err: ErrGameOver},
			contains: []string{"game over"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{Err: ErrNotYourTurn, From: "e7", To: "e5"}

	unwrapped := errors.Unwrap(moveErr)
	if !errors.Is(unwrapped, ErrNotYourTurn) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrNotYourTurn)
	}

	if !errors.Is(moveErr, ErrNotYourTurn) {
		t.Error("errors.Is(moveErr, ErrNotYourTurn) = false, want true")
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, From: "e1", To: "g1", Ply: 9}
	wrapped := fmt.Errorf("request failed: %w", moveErr)

	var extracted *MoveError
	if !As(wrapped, &extracted) {
		t.Fatal("As() could not extract MoveError")
	}
	if extracted.Ply != 9 {
		t.Errorf("extracted.Ply = %d, want 9", extracted.Ply)
	}
	if extracted.To != "g1" {
		t.Errorf("extracted.To = %q, want %q", extracted.To, "g1")
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrInvalidSquare,
		Input:    "z9",
		Offset:   0,
		Expected: "file a-h",
		Got:      "'z'",
	}

	msg := err.Error()

	if !containsIgnoreCase(msg, `"z9"`) {
		t.Errorf("ParseError.Error() should contain input, got %q", msg)
	}
	if !containsIgnoreCase(msg, "offset 0") {
		t.Errorf("ParseError.Error() should contain offset, got %q", msg)
	}
	if !containsIgnoreCase(msg, "expected file a-h") {
		t.Errorf("ParseError.Error() should contain expectation, got %q", msg)
	}
}

func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{Err: ErrInvalidFEN, Input: "8/8 x", Offset: -1}

	if !Is(parseErr, ErrInvalidFEN) {
		t.Error("Is(parseErr, ErrInvalidFEN) = false, want true")
	}
	if strings.Contains(parseErr.Error(), "offset") {
		t.Errorf("negative offset should be omitted, got %q", parseErr.Error())
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "loading position") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrGameNotFound, "game %q", "abc")

	if !errors.Is(wrapped, ErrGameNotFound) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, `game "abc"`) {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
