// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package resource persists the three catalog documents (products, users,
reviews) behind a small Backend interface.

Each document is read and written whole. There is no locking between
processes in the file backend: the last complete write wins. Writes go
through a temporary file and a rename so a reader never sees a half-written
document.

Backends:
  - file: one <name>.json file per resource under a data directory (default)
  - badger: one key per resource in a BadgerDB directory; Badger's directory
    lock makes a second concurrent process fail at open instead of racing
  - memory: in-process map, for tests and dry runs

Usage:

	b, err := resource.Open(resource.Config{Backend: "file", DataDir: "."})
	if err != nil {
	    return err
	}
	defer b.Close()

	data, err := b.Read(ctx, resource.Products)
	if errors.Is(err, resource.ErrNotExist) {
	    data = []byte("[]")
	}
*/
package resource
