// Package ttstore implements the transposition-table side of the core's
// opaque key contract: internal/board only ever hands out a Position's
// zobrist Key; everything about how that key is clustered, replaced, or
// persisted lives here, outside the core data structures.
package ttstore

import (
	"github.com/rudzen/ChessLib-sub000/internal/board"
)

// Bound classifies how an Entry's Value relates to the true minimax value
// of the search that produced it, mirroring alpha-beta's three outcomes
// plus the zero-value "nothing stored here" case.
type Bound uint8

const (
	// Void marks the absence of a usable entry; the zero value, so a
	// probe against an empty slot reports Void without extra bookkeeping.
	Void Bound = iota
	// Exact records a value known precisely (a PV node).
	Exact
	// Lower records a fail-high: the true value is at least Value.
	Lower
	// Upper records a fail-low: the true value is at most Value.
	Upper
)

// Entry is a single transposition-table record. Key is carried on the
// entry itself (rather than only as the map/cluster index) so a store
// backed by a lossy or shared-slot layout can verify it didn't return a
// different position's data on a hash collision.
type Entry struct {
	Key         uint64
	Value       int
	Bound       Bound
	Depth       int
	Move        board.Move
	StaticValue int
}

// Store is the store/probe(key) contract: probe is total (returning
// ok=false rather than erroring on a miss) and store is best-effort (no
// error return; a store that fails to persist an entry does not invalidate
// a search, it only costs the re-search that a hit would have avoided).
type Store interface {
	Probe(key uint64) (Entry, bool)
	Store(key uint64, entry Entry)
	Close() error
}
