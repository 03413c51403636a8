// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package recommend

import (
	"reflect"
	"testing"

	"github.com/tomtom215/catalogrec/internal/models"
)

func TestAverageRating(t *testing.T) {
	reviews := []models.Review{
		{UserID: 1, ProductID: 10, Rating: 5},
		{UserID: 2, ProductID: 10, Rating: 4},
		{UserID: 3, ProductID: 10, Rating: 3},
		{UserID: 1, ProductID: 11, Rating: 1},
		{UserID: 2, ProductID: 11, Rating: 2},
	}

	tests := []struct {
		name      string
		productID int
		want      float64
	}{
		{"three reviews", 10, 4.0},
		{"fractional mean", 11, 1.5},
		{"no reviews", 12, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AverageRating(reviews, tt.productID); got != tt.want {
				t.Errorf("AverageRating(%d) = %v, want %v", tt.productID, got, tt.want)
			}
		})
	}

	if got := AverageRating(nil, 10); got != 0 {
		t.Errorf("AverageRating(nil) = %v, want 0", got)
	}
}

func TestReviewCount(t *testing.T) {
	reviews := []models.Review{
		{UserID: 1, ProductID: 10, Rating: 5},
		{UserID: 2, ProductID: 10, Rating: 4},
		{UserID: 1, ProductID: 11, Rating: 1},
	}
	if got := ReviewCount(reviews, 10); got != 2 {
		t.Errorf("ReviewCount(10) = %d, want 2", got)
	}
	if got := ReviewCount(reviews, 99); got != 0 {
		t.Errorf("ReviewCount(99) = %d, want 0", got)
	}
}

func TestReviewedProductIDs(t *testing.T) {
	reviews := []models.Review{
		{UserID: 1, ProductID: 12, Rating: 5},
		{UserID: 2, ProductID: 10, Rating: 4},
		{UserID: 1, ProductID: 10, Rating: 1},
		{UserID: 1, ProductID: 11, Rating: 3},
	}
	want := []int{12, 10, 11}
	if got := ReviewedProductIDs(reviews, 1); !reflect.DeepEqual(got, want) {
		t.Errorf("ReviewedProductIDs(1) = %v, want %v", got, want)
	}
	if got := ReviewedProductIDs(reviews, 3); len(got) != 0 {
		t.Errorf("ReviewedProductIDs(3) = %v, want empty", got)
	}
}

func TestRatingIndexMatchesHelpers(t *testing.T) {
	reviews := []models.Review{
		{UserID: 1, ProductID: 10, Rating: 5},
		{UserID: 2, ProductID: 10, Rating: 2},
		{UserID: 1, ProductID: 11, Rating: 4},
	}
	idx := newRatingIndex(reviews)
	for _, id := range []int{10, 11, 12} {
		if idx.average(id) != AverageRating(reviews, id) {
			t.Errorf("average(%d) = %v, want %v", id, idx.average(id), AverageRating(reviews, id))
		}
		if idx.count(id) != ReviewCount(reviews, id) {
			t.Errorf("count(%d) = %d, want %d", id, idx.count(id), ReviewCount(reviews, id))
		}
	}
}
