// Package storage persists game snapshots in BadgerDB.
package storage

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Game keys are gamePrefix + id.
const gamePrefix = "game/"

// Store wraps BadgerDB for persistent game storage.
type Store struct {
	db *badger.DB
}

// Open opens the store described by cfg.
func Open(cfg *config.StorageConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Dir)
	}
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open store: %w: %w", errors.ErrStorage, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save writes a snapshot under id, replacing any previous one.
func (s *Store) Save(id string, snap game.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode game %s: %w", id, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(id), data)
	})
	if err != nil {
		return fmt.Errorf("save game %s: %w: %w", id, errors.ErrStorage, err)
	}
	return nil
}

// Load reads the snapshot stored under id.
func (s *Store) Load(id string) (game.Snapshot, error) {
	var snap game.Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
		}
		if err != nil {
			return fmt.Errorf("load game %s: %w: %w", id, errors.ErrStorage, err)
		}
		return item.Value(func(val []byte) error {
			if err := json.Unmarshal(val, &snap); err != nil {
				return fmt.Errorf("decode game %s: %w: %w", id, errors.ErrCorruptSnapshot, err)
			}
			return nil
		})
	})
	return snap, err
}

// LoadGame reads and restores the game stored under id.
func (s *Store) LoadGame(id string) (*game.Game, error) {
	snap, err := s.Load(id)
	if err != nil {
		return nil, err
	}
	g, err := game.Restore(snap)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", id, err)
	}
	return g, nil
}

// Delete removes the game stored under id. Deleting an unknown id
// returns ErrGameNotFound.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := gameKey(id)
		if _, err := txn.Get(key); err == badger.ErrKeyNotFound {
			return fmt.Errorf("game %s: %w", id, errors.ErrGameNotFound)
		} else if err != nil {
			return fmt.Errorf("delete game %s: %w: %w", id, errors.ErrStorage, err)
		}
		return txn.Delete(key)
	})
}

// List returns the stored game ids in sorted order.
func (s *Store) List() ([]string, error) {
	var ids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().Key()
			ids = append(ids, string(key[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list games: %w: %w", errors.ErrStorage, err)
	}
	slices.Sort(ids)
	return ids, nil
}

func gameKey(id string) []byte {
	return []byte(gamePrefix + id)
}
