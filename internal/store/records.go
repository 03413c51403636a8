// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package store

import (
	"errors"
	"fmt"
	"math"

	"github.com/tomtom215/catalogrec/internal/codec"
	"github.com/tomtom215/catalogrec/internal/models"
)

// Field names of the persisted documents.
const (
	fieldID        = "id"
	fieldName      = "name"
	fieldCategory  = "category"
	fieldPrice     = "price"
	fieldUserID    = "user_id"
	fieldProductID = "product_id"
	fieldRating    = "rating"
	fieldComment   = "comment"
)

var (
	errNegativePrice = errors.New("negative price")
	errRatingRange   = errors.New("rating out of range")
	errIDRange       = errors.New("id out of range")
)

// checkID rejects ids the counters could not advance past.
func checkID(id int) error {
	if id == math.MaxInt {
		return fmt.Errorf("%w: %d", errIDRange, id)
	}
	return nil
}

func decodeProduct(member string) (models.Product, error) {
	obj, err := codec.DecodeFlat(member)
	if err != nil {
		return models.Product{}, err
	}
	var p models.Product
	if p.ID, err = obj.Int(fieldID); err != nil {
		return models.Product{}, err
	}
	if err = checkID(p.ID); err != nil {
		return models.Product{}, err
	}
	if p.Name, err = obj.String(fieldName); err != nil {
		return models.Product{}, err
	}
	if p.Category, err = obj.String(fieldCategory); err != nil {
		return models.Product{}, err
	}
	if p.Price, err = obj.Decimal(fieldPrice); err != nil {
		return models.Product{}, err
	}
	if p.Price.IsNegative() {
		return models.Product{}, fmt.Errorf("%w: %s", errNegativePrice, p.Price)
	}
	return p, nil
}

func decodeUser(member string) (models.User, error) {
	obj, err := codec.DecodeFlat(member)
	if err != nil {
		return models.User{}, err
	}
	var u models.User
	if u.ID, err = obj.Int(fieldID); err != nil {
		return models.User{}, err
	}
	if err = checkID(u.ID); err != nil {
		return models.User{}, err
	}
	if u.Name, err = obj.String(fieldName); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func decodeReview(member string) (models.Review, error) {
	obj, err := codec.DecodeFlat(member)
	if err != nil {
		return models.Review{}, err
	}
	var r models.Review
	if r.UserID, err = obj.Int(fieldUserID); err != nil {
		return models.Review{}, err
	}
	if r.ProductID, err = obj.Int(fieldProductID); err != nil {
		return models.Review{}, err
	}
	if r.Rating, err = obj.Int(fieldRating); err != nil {
		return models.Review{}, err
	}
	if !models.ValidRating(r.Rating) {
		return models.Review{}, fmt.Errorf("%w: %d", errRatingRange, r.Rating)
	}
	// A missing comment is an empty comment.
	if _, ok := obj[fieldComment]; ok {
		if r.Comment, err = obj.String(fieldComment); err != nil && !errors.Is(err, codec.ErrMissingField) {
			return models.Review{}, err
		}
	}
	return r, nil
}

// EncodeProduct renders p as stored: id, name, category, price.
func EncodeProduct(p models.Product) string {
	return codec.EncodeObject(
		codec.Int(fieldID, p.ID),
		codec.String(fieldName, p.Name),
		codec.String(fieldCategory, p.Category),
		codec.Fixed2(fieldPrice, p.Price),
	)
}

// EncodeUser renders u as stored: id, name.
func EncodeUser(u models.User) string {
	return codec.EncodeObject(
		codec.Int(fieldID, u.ID),
		codec.String(fieldName, u.Name),
	)
}

// EncodeReview renders r as stored: user_id, product_id, rating, comment.
func EncodeReview(r models.Review) string {
	return codec.EncodeObject(
		codec.Int(fieldUserID, r.UserID),
		codec.Int(fieldProductID, r.ProductID),
		codec.Int(fieldRating, r.Rating),
		codec.String(fieldComment, r.Comment),
	)
}

func encodeProducts(products []models.Product) string {
	objs := make([]string, len(products))
	for i, p := range products {
		objs[i] = EncodeProduct(p)
	}
	return codec.JoinArray(objs)
}

func encodeUsers(users []models.User) string {
	objs := make([]string, len(users))
	for i, u := range users {
		objs[i] = EncodeUser(u)
	}
	return codec.JoinArray(objs)
}

func encodeReviews(reviews []models.Review) string {
	objs := make([]string, len(reviews))
	for i, r := range reviews {
		objs[i] = EncodeReview(r)
	}
	return codec.JoinArray(objs)
}
