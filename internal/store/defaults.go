// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package store

import (
	"github.com/shopspring/decimal"

	"github.com/tomtom215/catalogrec/internal/models"
)

// seedDefaults fills an empty store with the sample catalog. Identifiers come
// from the counters, so a fresh store gets 1000-1003 and 100-101.
func (s *Store) seedDefaults() {
	keyboard := s.AddProduct("Mechanical Keyboard", "Electronics", decimal.RequireFromString("99.99"))
	mouse := s.AddProduct("Wireless Mouse", "Electronics", decimal.RequireFromString("45.50"))
	book := s.AddProduct("The Silent Patient Book", "Books", decimal.RequireFromString("12.00"))
	hoodie := s.AddProduct("Blue Hoodie", "Apparel", decimal.RequireFromString("65.00"))

	alice := s.AddUser("Alice Johnson")
	bob := s.AddUser("Bob Smith")

	s.reviews = append(s.reviews,
		models.Review{UserID: alice.ID, ProductID: keyboard.ID, Rating: 5, Comment: "Excellent keyboard for coding."},
		models.Review{UserID: alice.ID, ProductID: mouse.ID, Rating: 4, Comment: "Reliable mouse, good battery life."},
		models.Review{UserID: bob.ID, ProductID: book.ID, Rating: 3, Comment: "A decent thriller, a bit slow."},
		models.Review{UserID: bob.ID, ProductID: hoodie.ID, Rating: 5, Comment: "Comfy and warm!"},
	)
}
