// Package engine implements the chess movement rules: piece geometry,
// castling, en passant, promotion, check detection and move application.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewPositionFromFEN creates a position from a FEN string.
//
// Only the first four fields are used. The side to move defaults to
// White and the castling and en passant fields default to "-". A
// castling right is kept only if the king and that rook stand on their
// home squares. An en passant square is turned into the double pawn push
// that would have produced it, provided the pawn is there.
func NewPositionFromFEN(fen string) (chess.Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return chess.Position{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := chess.Position{Rights: chess.NoCastlingRights()}

	if err := parsePiecePositions(&pos.Board, parts[0]); err != nil {
		return chess.Position{}, err
	}

	if err := parseSideToMove(&pos, parts); err != nil {
		return chess.Position{}, err
	}

	if err := parseCastlingRights(&pos, parts); err != nil {
		return chess.Position{}, err
	}

	if err := parseEnPassant(&pos, parts); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// MustPositionFromFEN is NewPositionFromFEN for constant strings; it panics on error.
func MustPositionFromFEN(fen string) chess.Position {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("expected %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				piece := chess.PieceFromLetter(c)
				if piece.IsEmpty() {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if col >= chess.BoardSize {
					return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
				}
				board.Set(chess.Sq(row, col), piece)
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		var colour chess.Colour
		var side chess.CastleSide
		switch c {
		case 'K':
			colour, side = chess.White, chess.Kingside
		case 'Q':
			colour, side = chess.White, chess.Queenside
		case 'k':
			colour, side = chess.Black, chess.Kingside
		case 'q':
			colour, side = chess.Black, chess.Queenside
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
		grantCastling(pos, colour, side)
	}
	return nil
}

// grantCastling clears the moved flags for colour's king and the rook on
// side if both are on their home squares.
func grantCastling(pos *chess.Position, colour chess.Colour, side chess.CastleSide) {
	if !pos.Board.At(chess.KingHome(colour)).Is(colour, chess.King) {
		return
	}
	if !pos.Board.At(chess.RookHome(colour, side)).Is(colour, chess.Rook) {
		return
	}
	pos.Rights.KingMoved[colour] = false
	pos.Rights.RookMoved[colour][side] = false
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	ep, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	pusher := pos.ToMove.Opposite()
	landed := chess.Sq(ep.Row+pusher.Forward(), ep.Col)
	origin := chess.Sq(ep.Row-pusher.Forward(), ep.Col)
	if !landed.Valid() || !origin.Valid() {
		return fmt.Errorf("en passant square %s on wrong rank: %w", ep, errors.ErrInvalidFEN)
	}

	pawn := chess.Piece{Colour: pusher, Kind: chess.Pawn}
	if pos.Board.At(landed) != pawn || origin.Row != pusher.PawnStartRow() {
		return nil
	}
	pos.LastMove = &chess.LastMove{Piece: pawn, From: origin, To: landed}
	return nil
}

// PositionToFEN converts a position to a FEN string. The clocks are not
// tracked and are always written as "0 1".
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, &pos.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos.ToMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, pos)
	sb.WriteByte(' ')
	writeEnPassant(&sb, pos.LastMove)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.At(chess.Sq(row, col))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
// A right is written only if it is still usable on the board.
func writeCastlingRights(sb *strings.Builder, pos *chess.Position) {
	letters := [chess.NumColours][2]byte{{'K', 'Q'}, {'k', 'q'}}
	hasCastling := false
	for colour := chess.White; colour <= chess.Black; colour++ {
		for side := chess.Kingside; side <= chess.Queenside; side++ {
			if !pos.Rights.Available(colour, side) ||
				!pos.Board.At(chess.KingHome(colour)).Is(colour, chess.King) ||
				!pos.Board.At(chess.RookHome(colour, side)).Is(colour, chess.Rook) {
				continue
			}
			sb.WriteByte(letters[colour][side])
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square skipped by a double pawn push, or "-".
func writeEnPassant(sb *strings.Builder, last *chess.LastMove) {
	if !last.IsDoublePawnPush() {
		sb.WriteByte('-')
		return
	}
	skipped := chess.Sq((last.From.Row+last.To.Row)/2, last.From.Col)
	sb.WriteString(skipped.String())
}
