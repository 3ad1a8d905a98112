package hashing

import (
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// SyncTable wraps Table with mutex protection for concurrent access.
type SyncTable struct {
	table *Table
	mu    sync.Mutex
}

// NewSyncTable creates a new thread-safe table.
// maxCapacity of 0 means unlimited capacity.
func NewSyncTable(maxCapacity int) *SyncTable {
	return &SyncTable{
		table: NewTable(maxCapacity),
	}
}

// Probe returns the cached node count for pos at depth.
func (s *SyncTable) Probe(pos *chess.Position, depth int) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Probe(pos, depth)
}

// Record stores the node count for pos at depth.
func (s *SyncTable) Record(pos *chess.Position, depth int, nodes uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Record(pos, depth, nodes)
}

// Len returns the number of cached entries.
func (s *SyncTable) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Len()
}

// Stats returns the probe hit and miss counts.
func (s *SyncTable) Stats() (hits, misses int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.Stats()
}

// IsFull returns true if the table has reached its capacity limit.
func (s *SyncTable) IsFull() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.IsFull()
}
