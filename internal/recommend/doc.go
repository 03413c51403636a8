// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

// Package recommend derives rating metrics from reviews and answers the
// "what should this user look at next" query.
//
// # Metrics
//
// AverageRating and ReviewCount are computed on demand from the review list;
// nothing is cached, so they always reflect the current state.
//
// # Recommendation
//
// The query is content-based and deliberately simple:
//
//  1. The user's most recently reviewed product (last in review order) picks
//     the target category.
//  2. Candidates are the products of that category the user has not
//     reviewed.
//  3. Candidates are ordered by average rating, highest first. Ties keep
//     catalog order.
//  4. At most K items are returned (Config.Limits.DefaultK when the request
//     leaves K at zero).
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	resp, err := engine.Recommend(ctx, store, recommend.Request{UserID: 100})
//
// The engine is safe for concurrent use; it holds no catalog state of its
// own.
package recommend
