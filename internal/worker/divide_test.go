package worker

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

func TestDivide(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		depth   int
		workers int
		cache   int
		want    uint64
	}{
		{"initial depth 1", engine.InitialFEN, 1, 2, 0, 20},
		{"initial depth 3 uncached", engine.InitialFEN, 3, 4, 0, 8902},
		{"initial depth 3 cached", engine.InitialFEN, 3, 4, 1 << 12, 8902},
		{"kiwipete depth 2", kiwipete, 2, 3, 1 << 12, 2039},
		{"single worker", engine.InitialFEN, 2, 1, 0, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, tt.fen)
			cfg := config.NewPerftConfig()
			cfg.Workers = tt.workers
			cfg.CacheEntries = tt.cache

			got := Divide(context.Background(), &pos, tt.depth, cfg)
			if got.Nodes != tt.want {
				t.Errorf("Nodes = %d, want %d", got.Nodes, tt.want)
			}
			if !got.Complete {
				t.Error("Complete = false")
			}

			serial := engine.Divide(&pos, tt.depth)
			var want []MoveCount
			for _, m := range engine.LegalMoves(&pos, pos.ToMove) {
				want = append(want, MoveCount{Move: m, Nodes: serial[m]})
			}
			if diff := cmp.Diff(want, got.Moves); diff != "" {
				t.Errorf("Moves mismatch with serial divide (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDivide_DepthZero(t *testing.T) {
	pos := chess.NewInitialPosition()
	got := Divide(context.Background(), &pos, 0, config.NewPerftConfig())
	if got.Nodes != 1 || !got.Complete || len(got.Moves) != 0 {
		t.Errorf("Divide(depth 0) = %+v", got)
	}
}

func TestDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pos := chess.NewInitialPosition()
	got := Divide(ctx, &pos, 3, config.NewPerftConfig())
	if got.Complete {
		t.Errorf("Complete = true after cancel, counted %d moves", len(got.Moves))
	}
}

func TestDivide_DoesNotMutate(t *testing.T) {
	pos := testutil.MustPosition(t, kiwipete)
	before := pos.Clone()
	Divide(context.Background(), &pos, 2, config.NewPerftConfig())
	testutil.AssertEqual(t, pos, before)
}

func TestPerftFunc(t *testing.T) {
	pos := chess.NewInitialPosition()
	m := testutil.ParseMove(t, "e2e4")
	item := WorkItem{Position: engine.Child(&pos, m), Move: m, Depth: 1, Index: 7}

	got := PerftFunc(nil)(item)
	want := ProcessResult{Move: m, Index: 7, Nodes: 20}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b error) bool { return a == b })); diff != "" {
		t.Errorf("PerftFunc() mismatch (-want +got):\n%s", diff)
	}
}
