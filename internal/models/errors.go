// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package models

import (
	"errors"
	"fmt"
)

// Error kinds.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicate      = errors.New("duplicate")
	ErrInvalidInput   = errors.New("invalid input")
	ErrNoHistory      = errors.New("no review history")
	ErrDataIntegrity  = errors.New("data integrity error")
	ErrResourceAccess = errors.New("resource access error")
)

// Lookup failures. Both wrap ErrNotFound.
var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
)

// Error codes reported in error payloads.
const (
	CodeNotFound       = "NOT_FOUND"
	CodeDuplicate      = "DUPLICATE"
	CodeInvalidInput   = "INVALID_INPUT"
	CodeNoHistory      = "NO_HISTORY"
	CodeDataIntegrity  = "DATA_INTEGRITY"
	CodeResourceAccess = "RESOURCE_ACCESS"
	CodeInternal       = "INTERNAL"
)

var kindCodes = []struct {
	err  error
	code string
}{
	{ErrNotFound, CodeNotFound},
	{ErrDuplicate, CodeDuplicate},
	{ErrInvalidInput, CodeInvalidInput},
	{ErrNoHistory, CodeNoHistory},
	{ErrDataIntegrity, CodeDataIntegrity},
	{ErrResourceAccess, CodeResourceAccess},
}

// Kind returns the error code for err, or CodeInternal when err does not wrap
// one of the known kinds. Kind(nil) returns the empty string.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, kc := range kindCodes {
		if errors.Is(err, kc.err) {
			return kc.code
		}
	}
	return CodeInternal
}

// APIError is the error body of a command response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewAPIError converts err into an APIError.
func NewAPIError(err error) *APIError {
	return &APIError{
		Code:    Kind(err),
		Message: err.Error(),
	}
}

// InvalidInputf returns an error wrapping ErrInvalidInput.
func InvalidInputf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
