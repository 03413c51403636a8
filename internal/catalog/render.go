// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"errors"

	"github.com/goccy/go-json"

	"github.com/tomtom215/catalogrec/internal/models"
	"github.com/tomtom215/catalogrec/internal/validation"
)

// Exit codes returned by Render.
const (
	ExitOK    = 0
	ExitError = 1
)

// errorMessages are the messages shown for the well-known failures, most
// specific first.
var errorMessages = []struct {
	err     error
	message string
}{
	{models.ErrUserNotFound, "User not found."},
	{models.ErrProductNotFound, "Product not found."},
	{ErrInvalidRating, "Invalid rating (1-5)."},
	{models.ErrDuplicate, "User has already reviewed this product."},
	{models.ErrNoHistory, "User has no review history for recommendations."},
	{models.ErrDataIntegrity, "Internal data error: Last reviewed product missing."},
}

// ErrorMessage returns the user-facing message for err.
func ErrorMessage(err error) string {
	for _, em := range errorMessages {
		if errors.Is(err, em.err) {
			return em.message
		}
	}
	return err.Error()
}

// Render serializes the outcome of a command into the single JSON document
// printed on stdout and returns the process exit code.
func Render(payload interface{}, err error) (string, int) {
	if err != nil {
		return renderError(err), ExitError
	}
	data, mErr := json.Marshal(payload)
	if mErr != nil {
		return renderError(mErr), ExitError
	}
	return string(data), ExitOK
}

func renderError(err error) string {
	data, mErr := json.Marshal(ErrorResponse{
		Status:   "error",
		APIError: errorBody(err),
	})
	if mErr != nil {
		return `{"status":"error","code":"INTERNAL","message":"failed to render error"}`
	}
	return string(data)
}

// errorBody returns the code and message rendered for err.
func errorBody(err error) *models.APIError {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		return verr.ToAPIError()
	}
	apiErr := models.NewAPIError(err)
	apiErr.Message = ErrorMessage(err)
	return apiErr
}
