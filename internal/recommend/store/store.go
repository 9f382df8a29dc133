// Reelrank - Content-Based Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelrank

// Package store persists recommendation model snapshots in BadgerDB so a
// restarted server can serve from the last build instead of retraining.
// Snapshots are gob-encoded under keys ordered by build time; a pointer key
// tracks the newest one.
package store

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelrank/internal/recommend"
)

// Key layout in BadgerDB.
const (
	// snapshotKeyPrefix precedes "<zero-padded build nanos>:<version>",
	// so lexicographic key order is chronological build order.
	snapshotKeyPrefix = "model:"

	// latestKey holds the key of the newest snapshot.
	latestKey = "model_latest"
)

// Store is a BadgerDB-backed snapshot store. It is safe for concurrent use.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
}

// New opens (or creates) a snapshot store at path.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func New(path string, logger zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(path, 0o750); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	opts := badger.DefaultOptions(path)
	// Reduce logging verbosity
	opts.Logger = nil
	// Snapshots are written once per build; sync them through.
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger.With().Str("component", "model_store").Logger(),
	}, nil
}

// Save persists a snapshot and returns its version.
func (s *Store) Save(_ context.Context, m *recommend.Model) (string, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(m); err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := snapshotKey(m)
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, buf.Bytes()); err != nil {
			return fmt.Errorf("set snapshot: %w", err)
		}
		if err := txn.Set([]byte(latestKey), key); err != nil {
			return fmt.Errorf("set latest pointer: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug().
		Str("version", m.Version).
		Int("bytes", buf.Len()).
		Msg("model snapshot saved")

	return m.Version, nil
}

// LoadLatest returns the newest stored snapshot. The returned model still
// needs the engine to rebuild its runtime state before it can serve.
func (s *Store) LoadLatest(_ context.Context) (*recommend.Model, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(latestKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: store holds no snapshots", recommend.ErrModelNotLoaded)
		}
		if err != nil {
			return fmt.Errorf("get latest pointer: %w", err)
		}

		key, err := item.ValueCopy(nil)
		if err != nil {
			return fmt.Errorf("read latest pointer: %w", err)
		}

		snap, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("latest snapshot %q missing", key)
		}
		if err != nil {
			return fmt.Errorf("get snapshot: %w", err)
		}

		data, err = snap.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	var m recommend.Model
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	return &m, nil
}

// Prune deletes all but the newest keep snapshots.
func (s *Store) Prune(_ context.Context, keep int) error {
	if keep < 1 {
		return fmt.Errorf("keep must be positive, got %d", keep)
	}

	keys, err := s.snapshotKeys()
	if err != nil {
		return err
	}
	if len(keys) <= keep {
		return nil
	}

	stale := keys[:len(keys)-keep]
	err = s.db.Update(func(txn *badger.Txn) error {
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return fmt.Errorf("delete snapshot %q: %w", key, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug().
		Int("deleted", len(stale)).
		Int("kept", keep).
		Msg("model snapshots pruned")

	return nil
}

// Versions returns the stored snapshot versions, oldest first.
func (s *Store) Versions(_ context.Context) ([]string, error) {
	keys, err := s.snapshotKeys()
	if err != nil {
		return nil, err
	}

	versions := make([]string, 0, len(keys))
	for _, key := range keys {
		versions = append(versions, versionFromKey(key))
	}
	return versions, nil
}

// Close releases the underlying BadgerDB.
func (s *Store) Close() error {
	return s.db.Close()
}

// snapshotKeys returns all snapshot keys in chronological order.
func (s *Store) snapshotKeys() ([][]byte, error) {
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(snapshotKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan snapshots: %w", err)
	}
	return keys, nil
}

// snapshotKey builds the storage key for a snapshot. Build time is
// zero-padded so string order matches chronological order.
func snapshotKey(m *recommend.Model) []byte {
	return fmt.Appendf(nil, "%s%019d:%s", snapshotKeyPrefix, m.BuiltAt.UnixNano(), m.Version)
}

// versionFromKey extracts the version from a snapshot key.
func versionFromKey(key []byte) string {
	s := string(key)
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		return s[i+1:]
	}
	return s
}

var _ recommend.ModelStore = (*Store)(nil)
