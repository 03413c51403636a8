// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package recommend

import "github.com/tomtom215/catalogrec/internal/models"

// Catalog is the read-only view of the store the engine works on.
// store.Store implements it.
type Catalog interface {
	// FindUser returns the user with id.
	FindUser(id int) (models.User, bool)

	// FindProduct returns the product with id.
	FindProduct(id int) (models.Product, bool)

	// Products returns every product in catalog order.
	Products() []models.Product

	// Reviews returns every review in insertion order.
	Reviews() []models.Review
}

// ScoredItem is one recommended product with its rating metrics.
type ScoredItem struct {
	// Product is the recommended product.
	Product models.Product `json:"product"`

	// AvgRating is the mean rating of the product, 0 when unreviewed.
	AvgRating float64 `json:"avg_rating"`

	// ReviewCount is the number of reviews of the product.
	ReviewCount int `json:"reviews_count"`
}

// Request represents a recommendation request.
type Request struct {
	// UserID is the user to generate recommendations for.
	UserID int `json:"user_id"`

	// K is the number of recommendations to return.
	// Defaults to Config.Limits.DefaultK if zero.
	K int `json:"k,omitempty"`

	// RequestID is a unique identifier for tracing. Taken from the context
	// or generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Response represents a recommendation response.
type Response struct {
	// TargetCategory is the category of the user's last reviewed product.
	TargetCategory string `json:"target_category"`

	// Items is the ordered list of recommended products. Never nil.
	Items []ScoredItem `json:"items"`

	// TotalCandidates is the number of unreviewed products in the target
	// category before the K limit.
	TotalCandidates int `json:"total_candidates"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	// RequestID is the unique request identifier.
	RequestID string `json:"request_id"`

	// K is the effective limit applied.
	K int `json:"k"`

	// LatencyMS is the total recommendation latency in milliseconds.
	LatencyMS int64 `json:"latency_ms"`
}
