// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package resource

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/tomtom215/catalogrec/internal/logging"
)

// keyPrefix namespaces resource documents inside the database.
const keyPrefix = "resource:"

// BadgerBackend stores each resource document under one BadgerDB key.
type BadgerBackend struct {
	db     *badger.DB
	path   string
	mu     sync.RWMutex
	closed bool
}

// OpenBadger opens (or creates) the database at path. Opening fails while
// another process holds the directory lock.
func OpenBadger(path string, syncWrites bool) (*BadgerBackend, error) {
	if path == "" {
		return nil, errors.New("badger path is required")
	}

	opts := badger.DefaultOptions(path)
	opts.SyncWrites = syncWrites
	// The documents are small; keep the memtable and value log modest.
	opts.MemTableSize = 16 << 20
	opts.ValueLogFileSize = 16 << 20
	opts.NumCompactors = 2

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	logging.Debug().
		Str("path", path).
		Bool("sync_writes", syncWrites).
		Msg("badger resource backend opened")
	return &BadgerBackend{db: db, path: path}, nil
}

// Read returns the document stored under name, or ErrNotExist.
func (b *BadgerBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil, ErrClosed
	}

	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotExist
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, ErrNotExist) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("read %s from BadgerDB: %w", name, err)
	}
	return data, nil
}

// Write replaces the document stored under name in one transaction.
func (b *BadgerBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(keyPrefix+name), data))
	})
	if err != nil {
		return fmt.Errorf("write %s to BadgerDB: %w", name, err)
	}
	return nil
}

// Kind returns "badger".
func (b *BadgerBackend) Kind() string { return KindBadger }

// Close releases the database and its directory lock.
func (b *BadgerBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	if err := b.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	return nil
}
