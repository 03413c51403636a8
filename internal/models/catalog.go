// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package models

import (
	"github.com/shopspring/decimal"
)

// First identifiers handed out by an empty store.
const (
	FirstProductID = 1000
	FirstUserID    = 100
)

// Rating bounds (inclusive).
const (
	MinRating = 1
	MaxRating = 5
)

// Product is a catalog entry. Category is a free-form label used to group
// products for recommendations.
type Product struct {
	ID       int
	Name     string
	Category string
	Price    decimal.Decimal
}

// User is a reviewer.
type User struct {
	ID   int
	Name string
}

// Review is a single rating of a product by a user. A user reviews a given
// product at most once.
type Review struct {
	UserID    int
	ProductID int
	Rating    int
	Comment   string
}

// ValidRating reports whether r is inside the accepted rating range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
