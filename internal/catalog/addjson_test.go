// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/catalogrec/internal/metrics"
	"github.com/tomtom215/catalogrec/internal/models"
	"github.com/tomtom215/catalogrec/internal/resource"
)

func TestAddFromJSON(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		object  string
		check   func(t *testing.T, resp interface{})
		wantErr error
	}{
		{
			name:   "user",
			kind:   KindUser,
			object: `{"name": "New User"}`,
			check: func(t *testing.T, resp interface{}) {
				u, ok := resp.(*AddUserResponse)
				if !ok || u.ID != 102 || u.Name != "New User" {
					t.Errorf("resp = %#v", resp)
				}
			},
		},
		{
			name:   "product",
			kind:   KindProduct,
			object: `{"name": "X", "category": "Y", "price": 99.99}`,
			check: func(t *testing.T, resp interface{}) {
				p, ok := resp.(*AddProductResponse)
				if !ok || p.ID != 1004 {
					t.Errorf("resp = %#v", resp)
				}
			},
		},
		{
			name:   "review",
			kind:   KindReview,
			object: `{"user_id": 101, "product_id": 1001, "rating": 5, "comment": "Great!"}`,
			check: func(t *testing.T, resp interface{}) {
				r, ok := resp.(*AddReviewResponse)
				if !ok || r.ProductID != 1001 || float64(r.NewAvgRating) != 4.5 {
					t.Errorf("resp = %#v", resp)
				}
			},
		},
		{
			name:   "review without comment",
			kind:   KindReview,
			object: `{"user_id": 100, "product_id": 1003, "rating": 2}`,
			check: func(t *testing.T, resp interface{}) {
				if _, ok := resp.(*AddReviewResponse); !ok {
					t.Errorf("resp = %#v", resp)
				}
			},
		},
		{name: "user without name", kind: KindUser, object: `{"nom": "x"}`, wantErr: models.ErrInvalidInput},
		{name: "user with empty name", kind: KindUser, object: `{"name": ""}`, wantErr: models.ErrInvalidInput},
		{name: "product without category", kind: KindProduct, object: `{"name": "X", "price": 1}`, wantErr: models.ErrInvalidInput},
		{name: "product with bad price", kind: KindProduct, object: `{"name": "X", "category": "Y", "price": "cheap"}`, wantErr: models.ErrInvalidInput},
		{name: "review with bad id", kind: KindReview, object: `{"user_id": "abc", "product_id": 1, "rating": 1}`, wantErr: models.ErrInvalidInput},
		{name: "review with unknown user", kind: KindReview, object: `{"user_id": 7, "product_id": 1000, "rating": 1}`, wantErr: models.ErrUserNotFound},
		{name: "unknown kind", kind: "order", object: `{}`, wantErr: models.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t, resource.NewMemoryBackend(), Config{})
			resp, err := svc.AddFromJSON(context.Background(), tt.kind, tt.object)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("AddFromJSON() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddFromJSON() error = %v", err)
			}
			tt.check(t, resp)
		})
	}
}

func TestAddFromJSON_CountedOnce(t *testing.T) {
	count := func(op string) float64 {
		return testutil.ToFloat64(metrics.OperationsTotal.WithLabelValues(op, metrics.StatusSuccess))
	}
	svc := newService(t, resource.NewMemoryBackend(), Config{})
	jsonBefore, userBefore := count(OpAddJSON), count(OpAddUser)

	if _, err := svc.AddFromJSON(context.Background(), KindUser, `{"name":"Once"}`); err != nil {
		t.Fatalf("AddFromJSON() error = %v", err)
	}
	if got := count(OpAddJSON) - jsonBefore; got != 1 {
		t.Errorf("%s counted %v times, want 1", OpAddJSON, got)
	}
	if got := count(OpAddUser) - userBefore; got != 0 {
		t.Errorf("%s counted %v times, want 0", OpAddUser, got)
	}
}

func TestAddFromJSON_ControlCharacterName(t *testing.T) {
	b := resource.NewMemoryBackend()
	ctx := context.Background()

	resp, err := newService(t, b, Config{}).AddFromJSON(ctx, KindUser, `{"name":"A\u0000B"}`)
	if err != nil {
		t.Fatalf("AddFromJSON() error = %v", err)
	}
	first := resp.(*AddUserResponse)
	if first.Name != "A\x00B" {
		t.Errorf("name = %q, want %q", first.Name, "A\x00B")
	}

	second, err := newService(t, b, Config{}).AddUser(ctx, AddUserRequest{Name: "Carol"})
	if err != nil {
		t.Fatalf("AddUser() error = %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("id %d assigned twice", second.ID)
	}

	users, err := newService(t, b, Config{}).ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	found := false
	for _, u := range users.Users {
		if u.ID == first.ID && u.Name == "A\x00B" {
			found = true
		}
	}
	if !found {
		t.Errorf("user %d missing after reload: %+v", first.ID, users.Users)
	}
}

func TestParseHelpers(t *testing.T) {
	if n, err := ParseInt("id", "1001"); err != nil || n != 1001 {
		t.Errorf("ParseInt(1001) = %d, %v", n, err)
	}
	if _, err := ParseInt("id", "10x"); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("ParseInt(10x) error = %v", err)
	}
	if d, err := ParsePrice("19.5"); err != nil || d.StringFixed(2) != "19.50" {
		t.Errorf("ParsePrice(19.5) = %s, %v", d, err)
	}
	if _, err := ParsePrice(""); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("ParsePrice(\"\") error = %v", err)
	}
}
