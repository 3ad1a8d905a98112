package game

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutcomeKind classifies the result of a move attempt.
type OutcomeKind int

const (
	Applied OutcomeKind = iota
	PromotionRequired
	RejectedIllegal
	RejectedNotYourTurn
	RejectedGameOver
	RejectedPromotionPending
	RejectedNoPromotionPending
	RejectedInvalidPromotion
)

var outcomeNames = []string{
	"applied",
	"promotion_required",
	"rejected_illegal",
	"rejected_not_your_turn",
	"rejected_game_over",
	"rejected_promotion_pending",
	"rejected_no_promotion_pending",
	"rejected_invalid_promotion",
}

// String returns the string representation of an outcome kind.
func (k OutcomeKind) String() string {
	if k >= 0 && int(k) < len(outcomeNames) {
		return outcomeNames[k]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *OutcomeKind) UnmarshalText(text []byte) error {
	for i, name := range outcomeNames {
		if name == string(text) {
			*k = OutcomeKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown move outcome %q", text)
}

// Rejected returns true for every kind that left the position unchanged.
func (k OutcomeKind) Rejected() bool {
	return k >= RejectedIllegal
}

// MoveOutcome is returned by every move attempt.
//
// For Applied and PromotionRequired, SideToMove and Status describe the
// position after the move. For rejections they describe the unchanged
// position.
type MoveOutcome struct {
	Kind       OutcomeKind
	SideToMove chess.Colour
	Status     engine.Status
	Captured   chess.Piece
	Castled    bool
	EnPassant  bool
	Promotion  chess.Kind // kind chosen, set only when a promotion completes
}

var outcomeErrors = map[OutcomeKind]error{
	RejectedIllegal:            errors.ErrIllegalMove,
	RejectedNotYourTurn:        errors.ErrNotYourTurn,
	RejectedGameOver:           errors.ErrGameOver,
	RejectedPromotionPending:   errors.ErrPromotionPending,
	RejectedNoPromotionPending: errors.ErrNoPromotionPending,
	RejectedInvalidPromotion:   errors.ErrInvalidPromotion,
}

// Err returns the sentinel error for a rejection, or nil.
func (o MoveOutcome) Err() error {
	return outcomeErrors[o.Kind]
}

// PendingPromotion identifies a pawn waiting for its promotion choice.
type PendingPromotion struct {
	Square chess.Square `json:"square"`
	Colour chess.Colour `json:"colour"`
}
