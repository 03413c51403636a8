// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/catalogrec/internal/codec"
	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/metrics"
	"github.com/tomtom215/catalogrec/internal/models"
	"github.com/tomtom215/catalogrec/internal/resource"
)

// DropHandler receives every persisted member skipped during Load.
type DropHandler func(resourceName, member string, err error)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default is the global logger.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger.With().Str("component", "store").Logger()
	}
}

// WithDropHandler registers fn as the drop handler.
func WithDropHandler(fn DropHandler) Option {
	return func(s *Store) {
		s.onDrop = fn
	}
}

// WithoutSeed disables writing the default catalog to an empty store.
func WithoutSeed() Option {
	return func(s *Store) {
		s.seed = false
	}
}

// WithSeed sets whether an empty store is seeded.
func WithSeed(enabled bool) Option {
	return func(s *Store) {
		s.seed = enabled
	}
}

// Store is the in-memory catalog.
type Store struct {
	backend resource.Backend
	logger  zerolog.Logger
	onDrop  DropHandler
	seed    bool

	products []models.Product
	users    []models.User
	reviews  []models.Review

	nextProductID int
	nextUserID    int
}

// New returns an empty Store backed by b. Call Load before use.
func New(b resource.Backend, opts ...Option) *Store {
	s := &Store{
		backend:       b,
		logger:        logging.With().Str("component", "store").Logger(),
		seed:          true,
		nextProductID: models.FirstProductID,
		nextUserID:    models.FirstUserID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the collections with the persisted documents. See the
// package documentation for the skip and seed rules.
func (s *Store) Load(ctx context.Context) error {
	start := time.Now()
	s.products = nil
	s.users = nil
	s.reviews = nil

	docs := make(map[string][]string, len(resource.Names))
	for _, name := range resource.Names {
		members, err := s.readMembers(ctx, name)
		if err != nil {
			return err
		}
		docs[name] = members
	}

	for _, m := range docs[resource.Products] {
		p, err := decodeProduct(m)
		if err != nil {
			s.dropped(resource.Products, m, err)
			continue
		}
		s.products = append(s.products, p)
		s.nextProductID = max(s.nextProductID, p.ID+1)
	}
	for _, m := range docs[resource.Users] {
		u, err := decodeUser(m)
		if err != nil {
			s.dropped(resource.Users, m, err)
			continue
		}
		s.users = append(s.users, u)
		s.nextUserID = max(s.nextUserID, u.ID+1)
	}
	for _, m := range docs[resource.Reviews] {
		r, err := decodeReview(m)
		if err != nil {
			s.dropped(resource.Reviews, m, err)
			continue
		}
		s.reviews = append(s.reviews, r)
	}

	if s.seed && len(s.products) == 0 && len(s.users) == 0 && len(s.reviews) == 0 {
		s.seedDefaults()
		metrics.RecordSeed()
		s.logger.Info().
			Int("products", len(s.products)).
			Int("users", len(s.users)).
			Int("reviews", len(s.reviews)).
			Msg("empty store seeded with default catalog")
		if err := s.Save(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("failed to persist default catalog")
		}
	}

	metrics.RecordStoreLoad(time.Since(start), map[string]int{
		resource.Products: len(s.products),
		resource.Users:    len(s.users),
		resource.Reviews:  len(s.reviews),
	})
	s.logger.Debug().
		Int("products", len(s.products)).
		Int("users", len(s.users)).
		Int("reviews", len(s.reviews)).
		Dur("duration", time.Since(start)).
		Msg("store loaded")
	return nil
}

// readMembers reads one resource and splits it into member objects. A
// missing or blank resource has no members. A document that is not a valid
// array as a whole is salvaged member by member.
func (s *Store) readMembers(ctx context.Context, name string) ([]string, error) {
	data, err := s.backend.Read(ctx, name)
	if errors.Is(err, resource.ErrNotExist) {
		s.logger.Debug().Str("resource", name).Msg("resource not found, treating as empty")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", models.ErrResourceAccess, name, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	members, err := codec.DecodeArray(data)
	if err == nil {
		return members, nil
	}
	s.logger.Debug().
		Err(err).
		Str("resource", name).
		Msg("resource is not a well-formed array, splitting members")
	return codec.SplitTopLevelArray(string(data)), nil
}

func (s *Store) dropped(name, member string, err error) {
	metrics.RecordDroppedRecord(name)
	s.logger.Debug().
		Err(err).
		Str("resource", name).
		Str("member", member).
		Msg("skipping undecodable record")
	if s.onDrop != nil {
		s.onDrop(name, member, err)
	}
}

// Save writes every collection back to the backend, replacing each document
// in full. All three writes are attempted; failures are logged, counted and
// returned joined.
func (s *Store) Save(ctx context.Context) error {
	docs := []struct {
		name string
		data string
	}{
		{resource.Products, encodeProducts(s.products)},
		{resource.Users, encodeUsers(s.users)},
		{resource.Reviews, encodeReviews(s.reviews)},
	}

	var errs []error
	for _, d := range docs {
		err := s.backend.Write(ctx, d.name, []byte(d.data))
		metrics.RecordResourceWrite(d.name, s.backend.Kind(), len(d.data), err)
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("resource", d.name).
				Str("backend", s.backend.Kind()).
				Msg("failed to write resource")
			errs = append(errs, fmt.Errorf("%w: save %s: %v", models.ErrResourceAccess, d.name, err))
		}
	}
	return errors.Join(errs...)
}

// NextProductID returns the identifier the next AddProduct will use.
func (s *Store) NextProductID() int { return s.nextProductID }

// NextUserID returns the identifier the next AddUser will use.
func (s *Store) NextUserID() int { return s.nextUserID }
