// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package models

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"not found", ErrNotFound, CodeNotFound},
		{"user not found", ErrUserNotFound, CodeNotFound},
		{"wrapped product not found", fmt.Errorf("add review: %w", ErrProductNotFound), CodeNotFound},
		{"duplicate", ErrDuplicate, CodeDuplicate},
		{"invalid input helper", InvalidInputf("rating %d", 9), CodeInvalidInput},
		{"no history", ErrNoHistory, CodeNoHistory},
		{"integrity", fmt.Errorf("recommend: %w", ErrDataIntegrity), CodeDataIntegrity},
		{"resource", fmt.Errorf("read products: %w", ErrResourceAccess), CodeResourceAccess},
		{"unknown", errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Kind(tt.err); got != tt.want {
				t.Errorf("Kind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestNotFoundSpecialisations(t *testing.T) {
	t.Parallel()

	if !errors.Is(ErrUserNotFound, ErrNotFound) {
		t.Error("ErrUserNotFound should wrap ErrNotFound")
	}
	if !errors.Is(ErrProductNotFound, ErrNotFound) {
		t.Error("ErrProductNotFound should wrap ErrNotFound")
	}
	if errors.Is(ErrUserNotFound, ErrProductNotFound) {
		t.Error("user and product lookups must be distinguishable")
	}
}

func TestNewAPIError(t *testing.T) {
	t.Parallel()

	apiErr := NewAPIError(ErrUserNotFound)
	if apiErr.Code != CodeNotFound {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeNotFound)
	}
	if apiErr.Message != "user not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "user not found")
	}
}
