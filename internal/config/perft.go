package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Depth to count to
	Depth int

	// Workers is the number of goroutines splitting root moves
	Workers int

	// BufferSize for worker channels
	BufferSize int

	// CacheEntries caps the shared node-count table (0 disables it)
	CacheEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:        3,
		Workers:      runtime.NumCPU(),
		BufferSize:   64,
		CacheEntries: 1 << 20,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth (%d) is negative: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.BufferSize < 0 || p.CacheEntries < 0 {
		return fmt.Errorf("negative perft buffer or cache size: %w", errors.ErrInvalidConfig)
	}
	return nil
}
