// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"context"

	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/models"
	"github.com/tomtom215/catalogrec/internal/recommend"
)

// ListProducts returns every product with its average rating and review count.
func (s *Service) ListProducts(ctx context.Context) (resp *ProductsResponse, err error) {
	ctx, done := s.begin(ctx, OpListProducts)
	defer func() { done(err) }()

	if err := s.reload(ctx); err != nil {
		return nil, err
	}

	reviews := s.store.Reviews()
	products := s.store.Products()
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, newProductView(p,
			recommend.AverageRating(reviews, p.ID),
			recommend.ReviewCount(reviews, p.ID)))
	}
	return &ProductsResponse{Products: views}, nil
}

// ListUsers returns every user.
func (s *Service) ListUsers(ctx context.Context) (resp *UsersResponse, err error) {
	ctx, done := s.begin(ctx, OpListUsers)
	defer func() { done(err) }()

	if err := s.reload(ctx); err != nil {
		return nil, err
	}

	users := s.store.Users()
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, UserView{ID: u.ID, Name: u.Name})
	}
	return &UsersResponse{Users: views}, nil
}

// ListReviews returns the reviews of a product in insertion order. An
// unknown product has no reviews; it is not an error.
func (s *Service) ListReviews(ctx context.Context, productID int) (resp *ReviewsResponse, err error) {
	ctx, done := s.begin(ctx, OpListReviews)
	defer func() { done(err) }()

	if err := s.reload(ctx); err != nil {
		return nil, err
	}

	reviews := s.store.ReviewsForProduct(productID)
	views := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, newReviewView(r))
	}
	return &ReviewsResponse{ProductID: productID, Reviews: views}, nil
}

// AddUser creates a user with the next user ID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) AddUser(ctx context.Context, req AddUserRequest) (resp *AddUserResponse, err error) {
	ctx, done := s.begin(ctx, OpAddUser)
	defer func() { done(err) }()

	return s.addUser(ctx, req)
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) addUser(ctx context.Context, req AddUserRequest) (*AddUserResponse, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}

	u := s.store.AddUser(req.Name)
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().Int("user_id", u.ID).Msg("user added")
	return &AddUserResponse{
		Status:  statusSuccess,
		Message: "User added successfully.",
		ID:      u.ID,
		Name:    u.Name,
	}, nil
}

// AddProduct creates a product with the next product ID. The price is
// rounded to cents.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) AddProduct(ctx context.Context, req AddProductRequest) (resp *AddProductResponse, err error) {
	ctx, done := s.begin(ctx, OpAddProduct)
	defer func() { done(err) }()

	return s.addProduct(ctx, req)
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) addProduct(ctx context.Context, req AddProductRequest) (*AddProductResponse, error) {
	if err := validate(&req); err != nil {
		return nil, err
	}
	if err := s.reload(ctx); err != nil {
		return nil, err
	}

	p := s.store.AddProduct(req.Name, req.Category, req.Price.Round(2))
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().Int("product_id", p.ID).Str("category", p.Category).Msg("product added")
	return &AddProductResponse{
		Status:  statusSuccess,
		Message: "Product added successfully.",
		ID:      p.ID,
	}, nil
}

// AddReview records a review. The user, the product, the rating and
// uniqueness are checked in that order.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) AddReview(ctx context.Context, req AddReviewRequest) (resp *AddReviewResponse, err error) {
	ctx, done := s.begin(ctx, OpAddReview)
	defer func() { done(err) }()

	return s.addReview(ctx, req)
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (s *Service) addReview(ctx context.Context, req AddReviewRequest) (*AddReviewResponse, error) {
	if err := s.reload(ctx); err != nil {
		return nil, err
	}
	if err := s.checkRefs(req.UserID, req.ProductID); err != nil {
		return nil, err
	}
	if err := validate(&req); err != nil {
		return nil, err
	}

	review := models.Review{
		UserID:    req.UserID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.store.AddReview(review); err != nil {
		return nil, err
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	return &AddReviewResponse{
		Status:       statusSuccess,
		Message:      "Review added.",
		ProductID:    req.ProductID,
		NewAvgRating: Rating(recommend.AverageRating(s.store.Reviews(), req.ProductID)),
	}, nil
}

// checkRefs resolves a user and a product, user first.
func (s *Service) checkRefs(userID, productID int) error {
	if _, ok := s.store.FindUser(userID); !ok {
		return models.ErrUserNotFound
	}
	if _, ok := s.store.FindProduct(productID); !ok {
		return models.ErrProductNotFound
	}
	return nil
}

// DeleteUser removes a user and every review the user wrote.
func (s *Service) DeleteUser(ctx context.Context, userID int) (resp *DeleteResponse, err error) {
	ctx, done := s.begin(ctx, OpDeleteUser)
	defer func() { done(err) }()

	if err := s.reload(ctx); err != nil {
		return nil, err
	}

	removed, err := s.store.DeleteUser(userID)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().Int("user_id", userID).Int("removed_reviews", removed).Msg("user deleted")
	return &DeleteResponse{
		Status:         statusSuccess,
		Message:        "User deleted successfully.",
		ID:             userID,
		RemovedReviews: removed,
	}, nil
}

// DeleteProduct removes a product and every review of it.
func (s *Service) DeleteProduct(ctx context.Context, productID int) (resp *DeleteResponse, err error) {
	ctx, done := s.begin(ctx, OpDeleteProduct)
	defer func() { done(err) }()

	if err := s.reload(ctx); err != nil {
		return nil, err
	}

	removed, err := s.store.DeleteProduct(productID)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().Int("product_id", productID).Int("removed_reviews", removed).Msg("product deleted")
	return &DeleteResponse{
		Status:         statusSuccess,
		Message:        "Product deleted successfully.",
		ID:             productID,
		RemovedReviews: removed,
	}, nil
}
