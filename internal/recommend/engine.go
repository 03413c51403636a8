// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/metrics"
	"github.com/tomtom215/catalogrec/internal/models"
)

// Engine answers recommendation queries against a Catalog.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend returns up to K unreviewed products from the category of the
// user's last reviewed product, best rated first.
//
// Errors wrap models.ErrUserNotFound for an unknown user, models.ErrNoHistory
// when the user has no reviews, models.ErrDataIntegrity when the last
// reviewed product no longer exists, and models.ErrInvalidInput for a
// negative K. An empty candidate set is not an error.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, catalog Catalog, req Request) (*Response, error) {
	start := time.Now()

	req, err := e.prepareRequest(ctx, req)
	if err != nil {
		return nil, e.fail(err)
	}
	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	if _, ok := catalog.FindUser(req.UserID); !ok {
		return nil, e.fail(models.ErrUserNotFound)
	}

	reviews := catalog.Reviews()
	history := ReviewedProductIDs(reviews, req.UserID)
	if len(history) == 0 {
		return nil, e.fail(fmt.Errorf("user %d: %w", req.UserID, models.ErrNoHistory))
	}

	lastID := history[len(history)-1]
	last, ok := catalog.FindProduct(lastID)
	if !ok {
		logger.Error().Int("product_id", lastID).Msg("last reviewed product missing from catalog")
		return nil, e.fail(fmt.Errorf("%w: last reviewed product %d missing", models.ErrDataIntegrity, lastID))
	}

	candidates := e.collectCandidates(catalog.Products(), last.Category, history, newRatingIndex(reviews))
	total := len(candidates)
	metrics.RecordRecommendation(nil, total)

	if total == 0 {
		logger.Debug().Str("category", last.Category).Msg("no candidates available")
	}

	if len(candidates) > req.K {
		candidates = candidates[:req.K]
	}

	resp := &Response{
		TargetCategory:  last.Category,
		Items:           candidates,
		TotalCandidates: total,
		Metadata: ResponseMetadata{
			RequestID: req.RequestID,
			K:         req.K,
			LatencyMS: time.Since(start).Milliseconds(),
		},
	}

	logger.Debug().
		Str("category", last.Category).
		Int("candidates", total).
		Int("returned", len(resp.Items)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and attaches a request ID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) (Request, error) {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}

	switch {
	case req.K < 0:
		return req, models.InvalidInputf("k must not be negative, got %d", req.K)
	case req.K == 0:
		req.K = e.config.Limits.DefaultK
	case req.K > e.config.Limits.MaxK:
		req.K = e.config.Limits.MaxK
	}
	return req, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Int("user_id", req.UserID).
		Logger()
}

// collectCandidates returns the products of category that are not in
// exclude, ordered by average rating descending. The sort is stable, so
// equally rated products keep catalog order.
func (e *Engine) collectCandidates(products []models.Product, category string, exclude []int, idx ratingIndex) []ScoredItem {
	seen := make(map[int]struct{}, len(exclude))
	for _, id := range exclude {
		seen[id] = struct{}{}
	}

	items := make([]ScoredItem, 0)
	for _, p := range products {
		if p.Category != category {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		items = append(items, ScoredItem{
			Product:     p,
			AvgRating:   idx.average(p.ID),
			ReviewCount: idx.count(p.ID),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].AvgRating > items[j].AvgRating
	})
	return items
}

func (e *Engine) fail(err error) error {
	metrics.RecordRecommendation(err, 0)
	return err
}
