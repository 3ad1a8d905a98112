package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// tableKey identifies a subtree: a position hash and the depth below it.
type tableKey struct {
	hash  uint64
	depth int
}

// Table caches perft node counts by position hash and depth.
type Table struct {
	entries     map[tableKey]uint64
	maxCapacity int // 0 means unlimited
	hits        int
	misses      int
}

// NewTable creates an empty table. A maxCapacity of 0 means unlimited;
// otherwise new entries are dropped once the table is full.
func NewTable(maxCapacity int) *Table {
	return &Table{
		entries:     make(map[tableKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Probe returns the cached node count for pos at depth.
func (t *Table) Probe(pos *chess.Position, depth int) (uint64, bool) {
	n, ok := t.entries[tableKey{Hash(pos), depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return n, ok
}

// Record stores the node count for pos at depth.
func (t *Table) Record(pos *chess.Position, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.entries[tableKey{Hash(pos), depth}] = nodes
}

// Len returns the number of cached entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Stats returns the probe hit and miss counts.
func (t *Table) Stats() (hits, misses int) {
	return t.hits, t.misses
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}
