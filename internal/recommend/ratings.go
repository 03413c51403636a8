// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package recommend

import (
	"github.com/tomtom215/catalogrec/internal/models"
)

// AverageRating returns the arithmetic mean of the ratings of productID, or 0
// when it has no reviews.
func AverageRating(reviews []models.Review, productID int) float64 {
	sum, n := 0, 0
	for _, r := range reviews {
		if r.ProductID == productID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// ReviewCount returns the number of reviews of productID.
func ReviewCount(reviews []models.Review, productID int) int {
	n := 0
	for _, r := range reviews {
		if r.ProductID == productID {
			n++
		}
	}
	return n
}

// ReviewedProductIDs returns the products reviewed by userID in review order.
func ReviewedProductIDs(reviews []models.Review, userID int) []int {
	var ids []int
	for _, r := range reviews {
		if r.UserID == userID {
			ids = append(ids, r.ProductID)
		}
	}
	return ids
}

// ratingIndex holds the sum and count of ratings per product so candidate
// scoring is one pass over the reviews.
type ratingIndex map[int]struct{ sum, n int }

func newRatingIndex(reviews []models.Review) ratingIndex {
	idx := make(ratingIndex)
	for _, r := range reviews {
		e := idx[r.ProductID]
		e.sum += r.Rating
		e.n++
		idx[r.ProductID] = e
	}
	return idx
}

func (idx ratingIndex) average(productID int) float64 {
	e := idx[productID]
	if e.n == 0 {
		return 0
	}
	return float64(e.sum) / float64(e.n)
}

func (idx ratingIndex) count(productID int) int {
	return idx[productID].n
}
