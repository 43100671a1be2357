// Package tilestore stores snapshots of generated tiles so that they may be
// loaded without generating them again.
package tilestore

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/google/uuid"
)

// ErrNotFound is returned by LoadTile if no snapshot was stored for a tile.
var ErrNotFound = errors.New("tilestore: tile not found")

// Provider stores and loads tile snapshots.
type Provider interface {
	// SaveTile stores a snapshot, replacing any snapshot of the same tile.
	SaveTile(s Snapshot) error
	// LoadTile loads the snapshot of the tile with the ID passed. ErrNotFound
	// is returned if it was never saved.
	LoadTile(id uuid.UUID) (Snapshot, error)
	// Close closes the provider. It must not be used afterwards.
	Close() error
}

// NopProvider implements a Provider that does not store anything.
type NopProvider struct{}

func (NopProvider) SaveTile(Snapshot) error              { return nil }
func (NopProvider) LoadTile(uuid.UUID) (Snapshot, error) { return Snapshot{}, ErrNotFound }
func (NopProvider) Close() error                         { return nil }

// DB is a Provider that stores snapshots in a LevelDB database.
type DB struct {
	ldb *leveldb.DB
	log *slog.Logger
}

// Open opens the LevelDB database in dir, creating it if it does not yet
// exist. If log is nil, slog.Default() is used.
func Open(dir string, log *slog.Logger) (*DB, error) {
	if log == nil {
		log = slog.Default()
	}
	ldb, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open tile db: %w", err)
	}
	return &DB{ldb: ldb, log: log.With("dir", dir)}, nil
}

// SaveTile ...
func (db *DB) SaveTile(s Snapshot) error {
	id, err := s.TileID()
	if err != nil {
		return fmt.Errorf("save tile: invalid id %q: %w", s.ID, err)
	}
	b, err := encodeSnapshot(s)
	if err != nil {
		return fmt.Errorf("save tile %v: %w", id, err)
	}
	if err := db.ldb.Put(tileKey(id), b, nil); err != nil {
		return fmt.Errorf("save tile %v: %w", id, err)
	}
	db.log.Debug("saved tile", "id", id, "biome", s.Biome, "size", len(b))
	return nil
}

// LoadTile ...
func (db *DB) LoadTile(id uuid.UUID) (Snapshot, error) {
	b, err := db.ldb.Get(tileKey(id), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return Snapshot{}, ErrNotFound
	} else if err != nil {
		return Snapshot{}, fmt.Errorf("load tile %v: %w", id, err)
	}
	s, err := decodeSnapshot(b)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load tile %v: %w", id, err)
	}
	return s, nil
}

// Close ...
func (db *DB) Close() error {
	return db.ldb.Close()
}

// tileKey returns the database key of the tile with the ID passed.
func tileKey(id uuid.UUID) []byte {
	return append([]byte("tile:"), id[:]...)
}
