// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/catalogrec/internal/codec"
	"github.com/tomtom215/catalogrec/internal/models"
)

// Record kinds accepted by AddFromJSON.
const (
	KindUser    = "user"
	KindProduct = "product"
	KindReview  = "review"
)

// AddFromJSON adds a record described by a flat JSON object, e.g.
//
//	{"name": "X", "category": "Y", "price": 99.99}
//
// Fields are read with codec.ExtractField, so the object does not need to be
// strictly valid JSON. An empty field counts as missing.
func (s *Service) AddFromJSON(ctx context.Context, kind, object string) (resp interface{}, err error) {
	ctx, done := s.begin(ctx, OpAddJSON)
	defer func() { done(err) }()

	switch kind {
	case KindUser:
		name := field(object, "name")
		if name == "" {
			return nil, models.InvalidInputf("user requires a name")
		}
		return s.addUser(ctx, AddUserRequest{Name: name})

	case KindProduct:
		req, err := parseProduct(object)
		if err != nil {
			return nil, err
		}
		return s.addProduct(ctx, req)

	case KindReview:
		req, err := parseReview(object)
		if err != nil {
			return nil, err
		}
		return s.addReview(ctx, req)

	default:
		return nil, models.InvalidInputf("unknown record kind %q (want user, product or review)", kind)
	}
}

func field(object, key string) string {
	v, _ := codec.ExtractField(object, key)
	return v
}

func parseProduct(object string) (AddProductRequest, error) {
	name, category := field(object, "name"), field(object, "category")
	if name == "" || category == "" {
		return AddProductRequest{}, models.InvalidInputf("product requires a name and a category")
	}
	price, err := ParsePrice(field(object, "price"))
	if err != nil {
		return AddProductRequest{}, err
	}
	return AddProductRequest{Name: name, Category: category, Price: price}, nil
}

func parseReview(object string) (AddReviewRequest, error) {
	var req AddReviewRequest
	var err error
	if req.UserID, err = ParseInt("user_id", field(object, "user_id")); err != nil {
		return req, err
	}
	if req.ProductID, err = ParseInt("product_id", field(object, "product_id")); err != nil {
		return req, err
	}
	if req.Rating, err = ParseInt("rating", field(object, "rating")); err != nil {
		return req, err
	}
	req.Comment = field(object, "comment")
	return req, nil
}

// ParseInt parses a decimal integer argument. Failures wrap
// models.ErrInvalidInput and name the argument.
func ParseInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, models.InvalidInputf("%s must be an integer, got %q", name, value)
	}
	return n, nil
}

// ParsePrice parses a price argument such as "99.99".
func ParsePrice(value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, models.InvalidInputf("price must be a number, got %q", value)
	}
	return d, nil
}
