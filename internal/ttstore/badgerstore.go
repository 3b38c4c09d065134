package ttstore

import (
	"encoding/binary"

	"github.com/dgraph-io/badger/v4"

	"github.com/rudzen/ChessLib-sub000/internal/board"
)

// entrySize is the fixed on-disk encoding: 8-byte key, 4-byte value,
// 4-byte static value, 4-byte depth, 2-byte move, 1-byte bound.
const entrySize = 8 + 4 + 4 + 4 + 2 + 1

// BadgerStore is a disk-backed Store: transposition-table tuples persisted
// under their big-endian Zobrist key, surviving process restarts. Useful
// for analysis sessions that revisit the same positions across runs.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (creating if necessary) a badger-backed Store
// rooted at dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

func keyBytes(key uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], key)
	return b[:]
}

func encodeEntry(e Entry) []byte {
	var b [entrySize]byte
	binary.BigEndian.PutUint64(b[0:8], e.Key)
	binary.BigEndian.PutUint32(b[8:12], uint32(int32(e.Value)))
	binary.BigEndian.PutUint32(b[12:16], uint32(int32(e.StaticValue)))
	binary.BigEndian.PutUint32(b[16:20], uint32(int32(e.Depth)))
	binary.BigEndian.PutUint16(b[20:22], uint16(e.Move))
	b[22] = byte(e.Bound)
	return b[:]
}

func decodeEntry(data []byte) (Entry, bool) {
	if len(data) != entrySize {
		return Entry{}, false
	}
	return Entry{
		Key:         binary.BigEndian.Uint64(data[0:8]),
		Value:       int(int32(binary.BigEndian.Uint32(data[8:12]))),
		StaticValue: int(int32(binary.BigEndian.Uint32(data[12:16]))),
		Depth:       int(int32(binary.BigEndian.Uint32(data[16:20]))),
		Move:        board.Move(binary.BigEndian.Uint16(data[20:22])),
		Bound:       Bound(data[22]),
	}, true
}

// Probe looks up key, reporting ok=false on a miss (including badger's
// ErrKeyNotFound, per the contract's "probe is total" rule) and on any
// other I/O error, since TT errors are never surfaced to the search.
func (s *BadgerStore) Probe(key uint64) (Entry, bool) {
	var entry Entry
	var found bool

	_ = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keyBytes(key))
		if err != nil {
			return nil
		}
		return item.Value(func(val []byte) error {
			entry, found = decodeEntry(val)
			return nil
		})
	})

	if found && entry.Key != key {
		// Collision or corrupt record: treat as a miss rather than hand
		// back another position's data.
		return Entry{}, false
	}
	return entry, found
}

// Store writes entry under key, best-effort: a write failure is silently
// dropped, matching the contract's "store is best-effort" rule.
func (s *BadgerStore) Store(key uint64, entry Entry) {
	entry.Key = key
	_ = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keyBytes(key), encodeEntry(entry))
	})
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
