// Package hashing provides Zobrist position hashing and hash-keyed node
// count tables.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed is fixed so hashes are stable across processes; they are
// persisted with game snapshots.
const zobristSeed = 0x5eed_c4e55

var (
	pieceKeys    [chess.NumColours][chess.NumKinds][chess.BoardSize * chess.BoardSize]uint64
	blackToMove  uint64
	castlingKeys [chess.NumColours][2]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = r.Uint64()
			}
		}
	}
	blackToMove = r.Uint64()
	for c := range castlingKeys {
		for side := range castlingKeys[c] {
			castlingKeys[c][side] = r.Uint64()
		}
	}
	for f := range epFileKeys {
		epFileKeys[f] = r.Uint64()
	}
}

// Hash computes the Zobrist hash of a position: piece placement, side to
// move, each available castling right and the file of a pawn that has
// just advanced two squares.
func Hash(pos *chess.Position) uint64 {
	var h uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := pos.Board.At(chess.Sq(row, col))
			if p.IsEmpty() {
				continue
			}
			h ^= pieceKeys[p.Colour][p.Kind][row*chess.BoardSize+col]
		}
	}

	if pos.ToMove == chess.Black {
		h ^= blackToMove
	}

	for c := chess.White; c <= chess.Black; c++ {
		for side := chess.Kingside; side <= chess.Queenside; side++ {
			if pos.Rights.Available(c, side) {
				h ^= castlingKeys[c][side]
			}
		}
	}

	if pos.LastMove.IsDoublePawnPush() {
		h ^= epFileKeys[pos.LastMove.To.Col]
	}

	return h
}
