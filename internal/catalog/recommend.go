// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"context"
	"fmt"

	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/recommend"
)

// RateComment is the comment stored by Rate.
const RateComment = "No comment provided."

// Recommend suggests the best-rated products the user has not reviewed in
// the category of the user's most recent review, using the configured
// default count. No candidates is a success with an empty list and a
// message.
func (s *Service) Recommend(ctx context.Context, userID int) (*RecommendResponse, error) {
	return s.RecommendTop(ctx, userID, 0)
}

// RecommendTop is Recommend with an explicit count. k of 0 selects the
// default, k above the configured maximum is clamped and a negative k is
// invalid input.
func (s *Service) RecommendTop(ctx context.Context, userID, k int) (resp *RecommendResponse, err error) {
	ctx, done := s.begin(ctx, OpRecommend)
	defer func() { done(err) }()

	if err := s.reload(ctx); err != nil {
		return nil, err
	}

	result, err := s.engine.Recommend(ctx, s.store, recommend.Request{UserID: userID, K: k})
	if err != nil {
		return nil, err
	}

	resp = &RecommendResponse{
		Status:          statusSuccess,
		UserID:          userID,
		TargetCategory:  result.TargetCategory,
		Recommendations: make([]ProductView, 0, len(result.Items)),
		TotalCandidates: result.TotalCandidates,
	}
	for _, item := range result.Items {
		resp.Recommendations = append(resp.Recommendations,
			newProductView(item.Product, item.AvgRating, item.ReviewCount))
	}
	if len(resp.Recommendations) == 0 {
		resp.Message = fmt.Sprintf("No new recommendations available in category %s.", result.TargetCategory)
	}

	logging.Ctx(ctx).Debug().
		Int("user_id", userID).
		Int("k", result.Metadata.K).
		Int("candidates", result.TotalCandidates).
		Int("returned", len(resp.Recommendations)).
		Int64("engine_latency_ms", result.Metadata.LatencyMS).
		Msg("recommendations ready")
	return resp, nil
}

// Purchase checks that the user and the product exist. Purchases are not
// stored.
func (s *Service) Purchase(ctx context.Context, userID, productID int) (resp *PurchaseResponse, err error) {
	ctx, done := s.begin(ctx, OpPurchase)
	defer func() { done(err) }()

	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	if err := s.checkRefs(userID, productID); err != nil {
		return nil, err
	}

	return &PurchaseResponse{
		Status:  statusSuccess,
		Message: "Purchase recorded (purchases are not stored).",
	}, nil
}

// Rate adds a review with RateComment as its comment.
func (s *Service) Rate(ctx context.Context, userID, productID, rating int) (resp *AddReviewResponse, err error) {
	ctx, done := s.begin(ctx, OpRate)
	defer func() { done(err) }()

	return s.addReview(ctx, AddReviewRequest{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   RateComment,
	})
}
