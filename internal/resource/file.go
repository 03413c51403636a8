// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package resource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// fileMode is the permission set for newly created resource files.
const fileMode = 0o644

// FileBackend stores each resource as <dir>/<name>.json.
type FileBackend struct {
	dir string
}

// NewFileBackend returns a backend rooted at dir. An empty dir means the
// working directory.
func NewFileBackend(dir string) *FileBackend {
	if dir == "" {
		dir = "."
	}
	return &FileBackend{dir: dir}
}

// Path returns the file that holds resource name.
func (b *FileBackend) Path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

// Read returns the file contents, or ErrNotExist when the file is missing.
func (b *FileBackend) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Write replaces the file through a temporary file in the same directory
// followed by a rename.
func (b *FileBackend) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(b.dir, "."+name+".json.tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync %s: %w", name, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, b.Path(name)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

// Kind returns "file".
func (b *FileBackend) Kind() string { return KindFile }

// Close is a no-op.
func (b *FileBackend) Close() error { return nil }
