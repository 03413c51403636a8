// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/catalogrec/internal/models"
	"github.com/tomtom215/catalogrec/internal/validation"
)

// ErrInvalidRating is returned for a rating outside 1-5.
var ErrInvalidRating = fmt.Errorf("%w: rating must be between %d and %d",
	models.ErrInvalidInput, models.MinRating, models.MaxRating)

// AddUserRequest is the input of AddUser.
type AddUserRequest struct {
	Name string `json:"name" validate:"notblank"`
}

// AddProductRequest is the input of AddProduct.
type AddProductRequest struct {
	Name     string          `json:"name" validate:"notblank"`
	Category string          `json:"category" validate:"notblank"`
	Price    decimal.Decimal `json:"price" validate:"decimal_gte0"`
}

// AddReviewRequest is the input of AddReview and Rate.
type AddReviewRequest struct {
	UserID    int    `json:"user_id"`
	ProductID int    `json:"product_id"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Comment   string `json:"comment"`
}

// validate runs the struct rules. A failed rating rule is reported as
// ErrInvalidRating so callers see the same error however it was detected.
func validate(req interface{}) error {
	verr := validation.ValidateStruct(req)
	if verr == nil {
		return nil
	}
	for _, fe := range verr.Errors() {
		if fe.Field() == "rating" {
			return ErrInvalidRating
		}
	}
	return verr
}
