package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/hailam/chesscore/internal/perft"
)

const keyPerftPrefix = "perft/"

// ErrNotFound is returned when no perft result is stored for a FEN and depth.
var ErrNotFound = errors.New("perft result not found")

// PerftRecord is one stored perft run.
type PerftRecord struct {
	RunID      string        `json:"run_id"`
	FEN        string        `json:"fen"`
	Depth      int           `json:"depth"`
	Nodes      uint64        `json:"nodes"`
	Divide     []perft.Entry `json:"divide,omitempty"`
	Elapsed    time.Duration `json:"elapsed"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// NodesPerSecond returns the search speed of the run, or 0 if it was not timed.
func (r *PerftRecord) NodesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Elapsed.Seconds()
}

// Storage wraps BadgerDB as a cache of perft results keyed by FEN and depth.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// Open opens (creating if needed) the database in dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open perft store %s: %w", dir, err)
	}
	log.Printf("perft store: %s", dir)
	return &Storage{db: db}, nil
}

// OpenInMemory opens a database that lives only as long as the process.
func OpenInMemory() (*Storage, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory perft store: %w", err)
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func perftKey(fen string, depth int) []byte {
	return []byte(fmt.Sprintf("%s%s/%02d", keyPerftPrefix, fen, depth))
}

// SavePerft stores rec, replacing any earlier result for the same FEN and
// depth. An empty RunID is filled with a fresh UUID and RecordedAt with now.
func (s *Storage) SavePerft(rec *PerftRecord) error {
	if rec.RunID == "" {
		rec.RunID = uuid.NewString()
	}
	if rec.RecordedAt.IsZero() {
		rec.RecordedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(rec.FEN, rec.Depth), data)
	})
}

// LoadPerft returns the stored result for fen at depth, or ErrNotFound.
func (s *Storage) LoadPerft(fen string, depth int) (*PerftRecord, error) {
	rec := &PerftRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(fen, depth))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListPerft returns every stored result for fen in increasing depth.
func (s *Storage) ListPerft(fen string) ([]*PerftRecord, error) {
	var recs []*PerftRecord
	prefix := []byte(keyPerftPrefix + fen + "/")

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rec := &PerftRecord{}
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, rec)
			}); err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	})

	return recs, err
}

// DeletePerft removes the stored result for fen at depth, if any.
func (s *Storage) DeletePerft(fen string, depth int) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(perftKey(fen, depth))
	})
}
