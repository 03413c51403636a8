// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package resource

import (
	"context"
	"errors"
	"fmt"
)

// Resource names.
const (
	Products = "products"
	Users    = "users"
	Reviews  = "reviews"
)

// Names lists every resource in load order.
var Names = []string{Products, Users, Reviews}

// Backend kinds accepted by Open.
const (
	KindFile   = "file"
	KindBadger = "badger"
	KindMemory = "memory"
)

// Errors returned by backends.
var (
	ErrNotExist       = errors.New("resource does not exist")
	ErrClosed         = errors.New("backend is closed")
	ErrUnknownBackend = errors.New("unknown backend")
)

// Backend reads and writes whole resource documents.
type Backend interface {
	// Read returns the document stored under name, or ErrNotExist.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the document stored under name.
	Write(ctx context.Context, name string, data []byte) error
	// Kind returns the backend kind, used as a metrics label.
	Kind() string
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	// Backend is one of "file", "badger" or "memory".
	Backend string

	// DataDir holds the <name>.json files of the file backend.
	DataDir string

	// BadgerPath is the BadgerDB directory of the badger backend.
	BadgerPath string

	// SyncWrites enables fsync on every badger write.
	SyncWrites bool
}

// Open returns the backend selected by cfg.Backend.
func Open(cfg Config) (Backend, error) {
	switch cfg.Backend {
	case KindFile, "":
		return NewFileBackend(cfg.DataDir), nil
	case KindBadger:
		return OpenBadger(cfg.BadgerPath, cfg.SyncWrites)
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
