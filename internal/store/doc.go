// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package store holds the in-memory catalog (products, users, reviews) and moves
it to and from a resource.Backend.

A Store is loaded, mutated and saved once per command:

	s := store.New(backend, store.WithLogger(logger))
	if err := s.Load(ctx); err != nil {
	    return err
	}
	user := s.AddUser("Alice")
	if err := s.Save(ctx); err != nil {
	    logger.Warn().Err(err).Msg("save failed")
	}

# Load

Load replaces the collections with what the backend holds. Members that do
not decode into a complete record are skipped, reported to the drop handler
and counted in catalogrec_records_dropped_total. Identifier counters only
move forward: after a load they sit above every identifier seen, so an
identifier is never handed out twice by one Store.

When nothing at all was loaded and seeding is enabled, the default catalog
is written back immediately so a first run starts with sample data.

# Concurrency

A Store is not safe for concurrent use. Two processes sharing one backend
each reload before mutating and save right after, which narrows but does not
remove the window in which one process overwrites the other's change. The
last save wins.
*/
package store
