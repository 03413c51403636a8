// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package store

import (
	"github.com/tomtom215/catalogrec/internal/models"
)

// Products returns the products in insertion order. The slice must not be
// modified.
func (s *Store) Products() []models.Product { return s.products }

// Users returns the users in insertion order.
func (s *Store) Users() []models.User { return s.users }

// Reviews returns the reviews in insertion order.
func (s *Store) Reviews() []models.Review { return s.reviews }

// FindUser returns the user with id.
func (s *Store) FindUser(id int) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// FindProduct returns the product with id.
func (s *Store) FindProduct(id int) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// HasReviewed reports whether userID already reviewed productID.
func (s *Store) HasReviewed(userID, productID int) bool {
	for _, r := range s.reviews {
		if r.UserID == userID && r.ProductID == productID {
			return true
		}
	}
	return false
}

// ReviewsForProduct returns the reviews of productID in insertion order.
func (s *Store) ReviewsForProduct(productID int) []models.Review {
	var out []models.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}
