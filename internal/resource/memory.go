// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package resource

import (
	"context"
	"sync"
)

// MemoryBackend keeps documents in memory. It is safe for concurrent use, so
// several stores can share one to model separate processes.
type MemoryBackend struct {
	mu       sync.RWMutex
	docs     map[string][]byte
	writeErr map[string]error
	writes   int
	closed   bool
}

// NewMemoryBackend returns an empty backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		docs:     make(map[string][]byte),
		writeErr: make(map[string]error),
	}
}

// Read returns a copy of the stored document.
func (m *MemoryBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	data, ok := m.docs[name]
	if !ok {
		return nil, ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

// Write stores a copy of data, or returns the error set with FailWrites.
func (m *MemoryBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if err := m.writeErr[name]; err != nil {
		return err
	}
	m.docs[name] = append([]byte(nil), data...)
	m.writes++
	return nil
}

// Put stores a document directly, bypassing write failures.
func (m *MemoryBackend) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[name] = append([]byte(nil), data...)
}

// Get returns the stored document and whether it exists.
func (m *MemoryBackend) Get(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.docs[name]
	return string(data), ok
}

// FailWrites makes every later Write of name return err. A nil err clears it.
func (m *MemoryBackend) FailWrites(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.writeErr, name)
		return
	}
	m.writeErr[name] = err
}

// Writes returns the number of successful writes.
func (m *MemoryBackend) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// Kind returns "memory".
func (m *MemoryBackend) Kind() string { return KindMemory }

// Close marks the backend closed.
func (m *MemoryBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
