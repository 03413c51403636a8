// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/metrics"
	"github.com/tomtom215/catalogrec/internal/recommend"
	"github.com/tomtom215/catalogrec/internal/store"
)

// Operation names used for metrics labels and log fields.
const (
	OpListProducts  = "list_products"
	OpListUsers     = "list_users"
	OpListReviews   = "list_reviews"
	OpAddUser       = "add_user"
	OpAddProduct    = "add_product"
	OpAddReview     = "add_review"
	OpDeleteUser    = "delete_user"
	OpDeleteProduct = "delete_product"
	OpRecommend     = "recommend"
	OpPurchase      = "purchase"
	OpRate          = "rate"
	OpAddJSON       = "add_json"
)

// Config holds Service settings.
type Config struct {
	// StrictWrites reports a failed save as a RESOURCE_ACCESS error instead
	// of only logging it.
	StrictWrites bool
}

// Service runs catalog commands against a store.
// It is not safe for concurrent use; a process runs one command.
type Service struct {
	store  *store.Store
	engine *recommend.Engine
	cfg    Config
	logger zerolog.Logger
}

// NewService creates a Service. A nil engine is replaced by one with the
// default configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(st *store.Store, engine *recommend.Engine, cfg Config, logger zerolog.Logger) (*Service, error) {
	if st == nil {
		return nil, errors.New("catalog: nil store")
	}
	if engine == nil {
		var err error
		engine, err = recommend.NewEngine(nil, logger)
		if err != nil {
			return nil, err
		}
	}
	return &Service{
		store:  st,
		engine: engine,
		cfg:    cfg,
		logger: logger.With().Str("component", "catalog").Logger(),
	}, nil
}

// Store returns the underlying store.
func (s *Service) Store() *store.Store {
	return s.store
}

// begin tags ctx with a request ID, the operation name and the service
// logger. The returned
// function records the outcome and must be called exactly once.
func (s *Service) begin(ctx context.Context, op string) (context.Context, func(error)) {
	if logging.RequestIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewRequestID(ctx)
	}
	ctx = logging.ContextWithOperation(ctx, op)
	ctx = logging.ContextWithLogger(ctx, s.logger)
	start := time.Now()

	return ctx, func(err error) {
		elapsed := time.Since(start)
		metrics.RecordOperation(op, elapsed, err)

		logger := logging.Ctx(ctx)
		event := logger.Debug()
		if err != nil {
			event = logger.Info().Err(err)
		}
		event.
			Str("status", metrics.StatusFor(err)).
			Dur("duration", elapsed).
			Msg("command finished")
	}
}

// reload replaces the in-memory state with the persisted state.
func (s *Service) reload(ctx context.Context) error {
	return s.store.Load(ctx)
}

// persist saves the store. Failures are already logged and counted by the
// store; they only fail the command under StrictWrites.
func (s *Service) persist(ctx context.Context) error {
	err := s.store.Save(ctx)
	if err == nil {
		return nil
	}
	if s.cfg.StrictWrites {
		return err
	}
	logging.Ctx(ctx).Warn().Err(err).Msg("change applied but not persisted")
	return nil
}
