package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// promotionChoices is the set offered to the player, strongest first.
var promotionChoices = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// PromotionChoices returns the kinds a pawn may promote to.
func PromotionChoices() []chess.Kind {
	return append([]chess.Kind(nil), promotionChoices...)
}

// ValidPromotion reports whether a pawn may become kind.
// Kings and pawns are never valid; promotion is mandatory.
func ValidPromotion(kind chess.Kind) bool {
	for _, k := range promotionChoices {
		if k == kind {
			return true
		}
	}
	return false
}

// NeedsPromotion reports whether piece arriving on to must promote.
func NeedsPromotion(piece chess.Piece, to chess.Square) bool {
	return piece.Kind == chess.Pawn && to.Row == piece.Colour.PromotionRow()
}

// Promote replaces the pawn standing on its promotion row at sq with a
// piece of kind and the pawn's colour.
func Promote(pos *chess.Position, sq chess.Square, kind chess.Kind) error {
	if !ValidPromotion(kind) {
		return fmt.Errorf("promote to %v: %w", kind, errors.ErrInvalidPromotion)
	}
	pawn := pos.Board.At(sq)
	if !NeedsPromotion(pawn, sq) {
		return fmt.Errorf("promote on %v: no pawn to promote: %w", sq, errors.ErrNoPromotionPending)
	}
	pos.Board.Set(sq, chess.Piece{Colour: pawn.Colour, Kind: kind})
	return nil
}
