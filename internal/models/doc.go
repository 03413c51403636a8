// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package models defines the record types and error kinds shared by every
layer of catalogrec.

Record Types:

  - Product: catalog entry (id from 1000, free-form category, two-digit price)
  - User: reviewer (id from 100)
  - Review: one rating (1-5) and comment by a user for a product

Error Kinds:

Every failure a command can report wraps exactly one of the sentinel errors
below, so callers match with errors.Is and the response layer can map the
error to a stable code with Kind:

	ErrNotFound        NOT_FOUND        (ErrUserNotFound, ErrProductNotFound)
	ErrDuplicate       DUPLICATE
	ErrInvalidInput    INVALID_INPUT
	ErrNoHistory       NO_HISTORY
	ErrDataIntegrity   DATA_INTEGRITY
	ErrResourceAccess  RESOURCE_ACCESS

Malformed stored records are not errors; the store skips them during load.
*/
package models
