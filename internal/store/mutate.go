// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package store

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/catalogrec/internal/models"
)

// AddUser appends a user with the next user identifier.
func (s *Store) AddUser(name string) models.User {
	u := models.User{ID: s.nextUserID, Name: name}
	s.nextUserID++
	s.users = append(s.users, u)
	return u
}

// AddProduct appends a product with the next product identifier.
func (s *Store) AddProduct(name, category string, price decimal.Decimal) models.Product {
	p := models.Product{ID: s.nextProductID, Name: name, Category: category, Price: price}
	s.nextProductID++
	s.products = append(s.products, p)
	return p
}

// AddReview appends r. The user, the product, the rating and uniqueness are
// checked in that order; nothing changes on error.
func (s *Store) AddReview(r models.Review) error {
	if _, ok := s.FindUser(r.UserID); !ok {
		return models.ErrUserNotFound
	}
	if _, ok := s.FindProduct(r.ProductID); !ok {
		return models.ErrProductNotFound
	}
	if !models.ValidRating(r.Rating) {
		return models.InvalidInputf("rating %d outside %d-%d", r.Rating, models.MinRating, models.MaxRating)
	}
	if s.HasReviewed(r.UserID, r.ProductID) {
		return fmt.Errorf("%w: user %d already reviewed product %d", models.ErrDuplicate, r.UserID, r.ProductID)
	}
	s.reviews = append(s.reviews, r)
	return nil
}

// DeleteUser removes the user and every review written by it. It returns the
// number of reviews removed.
func (s *Store) DeleteUser(id int) (int, error) {
	idx := -1
	for i, u := range s.users {
		if u.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, models.ErrUserNotFound
	}
	s.users = append(s.users[:idx], s.users[idx+1:]...)
	return s.removeReviews(func(r models.Review) bool { return r.UserID == id }), nil
}

// DeleteProduct removes the product and every review of it. It returns the
// number of reviews removed.
func (s *Store) DeleteProduct(id int) (int, error) {
	idx := -1
	for i, p := range s.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, models.ErrProductNotFound
	}
	s.products = append(s.products[:idx], s.products[idx+1:]...)
	return s.removeReviews(func(r models.Review) bool { return r.ProductID == id }), nil
}

// removeReviews filters the reviews in place, keeping order.
func (s *Store) removeReviews(match func(models.Review) bool) int {
	kept := s.reviews[:0]
	for _, r := range s.reviews {
		if !match(r) {
			kept = append(kept, r)
		}
	}
	removed := len(s.reviews) - len(kept)
	s.reviews = kept
	return removed
}
