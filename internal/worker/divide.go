package worker

import (
	"context"

	"github.com/apex/log"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// MoveCount is the node count below one root move.
type MoveCount struct {
	Move  engine.Move `json:"move"`
	Nodes uint64      `json:"nodes"`
}

// DivideResult is the outcome of a parallel divide.
type DivideResult struct {
	Depth     int         `json:"depth"`
	Moves     []MoveCount `json:"moves"` // In root move order
	Nodes     uint64      `json:"nodes"`
	CacheHits int         `json:"cache_hits"`
	Complete  bool        `json:"complete"` // False if ctx was cancelled
}

// PerftFunc returns a ProcessFunc counting each item's subtree, sharing
// cache between workers when it is non-nil.
func PerftFunc(cache *hashing.SyncTable) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		var nodes uint64
		if cache != nil {
			nodes = engine.PerftCached(&item.Position, item.Depth, cache)
		} else {
			nodes = engine.Perft(&item.Position, item.Depth)
		}
		return ProcessResult{Move: item.Move, Index: item.Index, Nodes: nodes}
	}
}

// Divide counts perft to depth from pos, splitting the root moves across
// cfg.Workers goroutines. Cancelling ctx stops the run early; the result
// then holds only the subtrees already counted.
func Divide(ctx context.Context, pos *chess.Position, depth int, cfg *config.PerftConfig) DivideResult {
	res := DivideResult{Depth: depth}
	if depth <= 0 {
		res.Nodes = 1
		res.Complete = true
		return res
	}

	var cache *hashing.SyncTable
	if cfg.CacheEntries > 0 {
		cache = hashing.NewSyncTable(cfg.CacheEntries)
	}
	pool := NewPool(cfg.Workers, cfg.BufferSize, PerftFunc(cache))
	pool.Start()

	moves := engine.LegalMoves(pos, pos.ToMove)
	go func() {
		defer pool.Close()
		for i, m := range moves {
			if ctx.Err() != nil {
				pool.Stop()
				return
			}
			pool.Submit(WorkItem{
				Position: engine.Child(pos, m),
				Move:     m,
				Depth:    depth - 1,
				Index:    i,
			})
		}
	}()

	for r := range pool.Results() {
		res.Moves = append(res.Moves, MoveCount{Move: r.Move, Nodes: r.Nodes})
		res.Nodes += r.Nodes
		if ctx.Err() != nil {
			pool.Stop()
		}
	}

	index := make(map[engine.Move]int, len(moves))
	for i, m := range moves {
		index[m] = i
	}
	slices.SortFunc(res.Moves, func(a, b MoveCount) int {
		return index[a.Move] - index[b.Move]
	})

	if cache != nil {
		res.CacheHits, _ = cache.Stats()
	}
	res.Complete = len(res.Moves) == len(moves)

	log.WithFields(log.Fields{
		"depth":    depth,
		"moves":    len(moves),
		"nodes":    res.Nodes,
		"workers":  pool.NumWorkers(),
		"complete": res.Complete,
	}).Debug("divide finished")
	return res
}
