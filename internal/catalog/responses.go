// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/tomtom215/catalogrec/internal/codec"
	"github.com/tomtom215/catalogrec/internal/models"
)

const statusSuccess = "success"

// Money marshals a decimal as a JSON number with two fraction digits.
type Money decimal.Decimal

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(2)), nil
}

// Rating marshals an average rating as a JSON number with two fraction digits.
type Rating float64

// MarshalJSON implements json.Marshaler.
func (r Rating) MarshalJSON() ([]byte, error) {
	return []byte(codec.FormatFixed2(float64(r))), nil
}

// ProductView is a product with its rating metrics.
type ProductView struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Price        Money  `json:"price"`
	AvgRating    Rating `json:"avg_rating"`
	ReviewsCount int    `json:"reviews_count"`
}

// UserView is the listed form of a user.
type UserView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ReviewView is the listed form of a review.
type ReviewView struct {
	UserID    int    `json:"user_id"`
	ProductID int    `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ProductsResponse is the payload of ListProducts.
type ProductsResponse struct {
	Products []ProductView `json:"products"`
}

// UsersResponse is the payload of ListUsers.
type UsersResponse struct {
	Users []UserView `json:"users"`
}

// ReviewsResponse is the payload of ListReviews.
type ReviewsResponse struct {
	ProductID int          `json:"product_id"`
	Reviews   []ReviewView `json:"reviews"`
}

// AddUserResponse is the payload of AddUser.
type AddUserResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int    `json:"id"`
	Name    string `json:"name"`
}

// AddProductResponse is the payload of AddProduct.
type AddProductResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// AddReviewResponse is the payload of AddReview and Rate.
type AddReviewResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ProductID    int    `json:"product_id"`
	NewAvgRating Rating `json:"new_avg_rating"`
}

// DeleteResponse is the payload of DeleteUser and DeleteProduct.
// RemovedReviews counts the cascaded reviews and is not rendered.
type DeleteResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	ID             int    `json:"id"`
	RemovedReviews int    `json:"-"`
}

// PurchaseResponse is the payload of Purchase.
type PurchaseResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RecommendResponse is the payload of Recommend. Message is only set when
// there are no recommendations. TotalCandidates counts the candidates before
// the limit and is not rendered.
type RecommendResponse struct {
	Status          string        `json:"status"`
	UserID          int           `json:"user_id"`
	TargetCategory  string        `json:"target_category"`
	Recommendations []ProductView `json:"recommendations"`
	Message         string        `json:"message,omitempty"`
	TotalCandidates int           `json:"-"`
}

// ErrorResponse is the document rendered for a failed command.
type ErrorResponse struct {
	Status string `json:"status"`
	*models.APIError
}

func newProductView(p models.Product, avg float64, count int) ProductView {
	return ProductView{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Price:        Money(p.Price),
		AvgRating:    Rating(avg),
		ReviewsCount: count,
	}
}

func newReviewView(r models.Review) ReviewView {
	return ReviewView{
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
	}
}
