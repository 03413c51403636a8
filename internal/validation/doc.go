// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is configured once with the custom rules
// the catalog commands need. Failures come back as *RequestValidationError,
// which wraps models.ErrInvalidInput so the command layer reports them with
// the INVALID_INPUT code.
//
// # Custom Validators
//
//	notblank      string is not empty after trimming whitespace
//	decimal_gte0  decimal.Decimal (or number) is >= 0
//
// decimal.Decimal fields are converted to float64 before validation, so the
// standard numeric tags (gte, lte, ...) work on prices too.
//
// # Field Names
//
// Messages use the json tag name of a field when it has one:
//
//	type AddReviewRequest struct {
//	    Rating int `json:"rating" validate:"min=1,max=5"`
//	}
//	// "rating must be at most 5"
//
// # Usage
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    return verr // errors.Is(verr, models.ErrInvalidInput) == true
//	}
package validation
