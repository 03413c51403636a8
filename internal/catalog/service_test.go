// Catalogrec - Product Catalog and Recommendation Store
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/models"
	"github.com/tomtom215/catalogrec/internal/resource"
	"github.com/tomtom215/catalogrec/internal/store"
)

// newService builds a fresh store and service over b, the way each CLI
// invocation does.
func newService(t *testing.T, b resource.Backend, cfg Config, opts ...store.Option) *Service {
	t.Helper()
	logger := logging.NewTestLogger(io.Discard)
	opts = append([]store.Option{store.WithLogger(logger)}, opts...)
	svc, err := NewService(store.New(b, opts...), nil, cfg, logger)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func seededService(t *testing.T) (*Service, *resource.MemoryBackend) {
	t.Helper()
	b := resource.NewMemoryBackend()
	return newService(t, b, Config{}), b
}

func TestNewService_NilStore(t *testing.T) {
	if _, err := NewService(nil, nil, Config{}, logging.NewTestLogger(io.Discard)); err == nil {
		t.Error("NewService(nil store) should fail")
	}
}

func TestListProducts_Seeded(t *testing.T) {
	svc, _ := seededService(t)

	resp, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(resp.Products) != 4 {
		t.Fatalf("products = %d, want 4", len(resp.Products))
	}

	want := []struct {
		id    int
		price string
		avg   float64
		count int
	}{
		{1000, "99.99", 5, 1},
		{1001, "45.5", 4, 1},
		{1002, "12", 3, 1},
		{1003, "65", 5, 1},
	}
	for i, w := range want {
		got := resp.Products[i]
		if got.ID != w.id {
			t.Errorf("product[%d].ID = %d, want %d", i, got.ID, w.id)
		}
		if !decimal.Decimal(got.Price).Equal(decimal.RequireFromString(w.price)) {
			t.Errorf("product[%d].Price = %s, want %s", i, decimal.Decimal(got.Price), w.price)
		}
		if float64(got.AvgRating) != w.avg || got.ReviewsCount != w.count {
			t.Errorf("product[%d] rating = %v/%d, want %v/%d", i, got.AvgRating, got.ReviewsCount, w.avg, w.count)
		}
	}
}

func TestListUsersAndReviews(t *testing.T) {
	svc, _ := seededService(t)
	ctx := context.Background()

	users, err := svc.ListUsers(ctx)
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if len(users.Users) != 2 || users.Users[0].Name != "Alice Johnson" || users.Users[1].ID != 101 {
		t.Errorf("ListUsers() = %+v", users.Users)
	}

	reviews, err := svc.ListReviews(ctx, 1002)
	if err != nil {
		t.Fatalf("ListReviews() error = %v", err)
	}
	if reviews.ProductID != 1002 || len(reviews.Reviews) != 1 || reviews.Reviews[0].UserID != 101 {
		t.Errorf("ListReviews(1002) = %+v", reviews)
	}

	// Unknown product: empty list, not an error
	none, err := svc.ListReviews(ctx, 4242)
	if err != nil {
		t.Fatalf("ListReviews(unknown) error = %v", err)
	}
	if none.Reviews == nil || len(none.Reviews) != 0 {
		t.Errorf("ListReviews(unknown) = %+v, want empty non-nil list", none.Reviews)
	}
}

func TestAddUserAndProduct_AssignSequentialIDs(t *testing.T) {
	b := resource.NewMemoryBackend()
	ctx := context.Background()

	u, err := newService(t, b, Config{}).AddUser(ctx, AddUserRequest{Name: "Carol"})
	if err != nil {
		t.Fatalf("AddUser() error = %v", err)
	}
	if u.ID != 102 || u.Name != "Carol" || u.Message != "User added successfully." {
		t.Errorf("AddUser() = %+v", u)
	}

	p, err := newService(t, b, Config{}).AddProduct(ctx, AddProductRequest{
		Name: "USB Hub", Category: "Electronics", Price: decimal.RequireFromString("19.999"),
	})
	if err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}
	if p.ID != 1004 || p.Message != "Product added successfully." {
		t.Errorf("AddProduct() = %+v", p)
	}

	// A new process sees both records; the price was rounded to cents.
	products, err := newService(t, b, Config{}).ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	last := products.Products[len(products.Products)-1]
	if last.ID != 1004 || decimal.Decimal(last.Price).StringFixed(2) != "20.00" {
		t.Errorf("last product = %+v", last)
	}
}

func TestAddUser_Validation(t *testing.T) {
	svc, b := seededService(t)
	writes := b.Writes()

	_, err := svc.AddUser(context.Background(), AddUserRequest{Name: "  "})
	if !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("AddUser(blank) error = %v, want ErrInvalidInput", err)
	}
	if b.Writes() != writes {
		t.Error("invalid input must not write")
	}
}

func TestAddProduct_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  AddProductRequest
	}{
		{"blank name", AddProductRequest{Name: "", Category: "Books", Price: decimal.NewFromInt(1)}},
		{"blank category", AddProductRequest{Name: "Novel", Category: " ", Price: decimal.NewFromInt(1)}},
		{"negative price", AddProductRequest{Name: "Novel", Category: "Books", Price: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := seededService(t)
			_, err := svc.AddProduct(context.Background(), tt.req)
			if models.Kind(err) != models.CodeInvalidInput {
				t.Errorf("AddProduct() kind = %q, want INVALID_INPUT (err %v)", models.Kind(err), err)
			}
		})
	}
}

func TestAddReview_CheckOrder(t *testing.T) {
	tests := []struct {
		name    string
		req     AddReviewRequest
		wantErr error
		wantMsg string
	}{
		{"unknown user beats everything", AddReviewRequest{UserID: 999, ProductID: 999, Rating: 9}, models.ErrUserNotFound, "User not found."},
		{"unknown product beats rating", AddReviewRequest{UserID: 100, ProductID: 999, Rating: 9}, models.ErrProductNotFound, "Product not found."},
		{"rating beats duplicate", AddReviewRequest{UserID: 100, ProductID: 1000, Rating: 0}, ErrInvalidRating, "Invalid rating (1-5)."},
		{"duplicate", AddReviewRequest{UserID: 100, ProductID: 1000, Rating: 4}, models.ErrDuplicate, "User has already reviewed this product."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := seededService(t)
			_, err := svc.AddReview(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddReview() error = %v, want %v", err, tt.wantErr)
			}
			if got := ErrorMessage(err); got != tt.wantMsg {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestAddReview_UpdatesAverage(t *testing.T) {
	b := resource.NewMemoryBackend()
	ctx := context.Background()

	resp, err := newService(t, b, Config{}).AddReview(ctx, AddReviewRequest{
		UserID: 101, ProductID: 1000, Rating: 2, Comment: "Too loud",
	})
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}
	if resp.Message != "Review added." || resp.ProductID != 1000 || float64(resp.NewAvgRating) != 3.5 {
		t.Errorf("AddReview() = %+v", resp)
	}

	reviews, err := newService(t, b, Config{}).ListReviews(ctx, 1000)
	if err != nil {
		t.Fatalf("ListReviews() error = %v", err)
	}
	if len(reviews.Reviews) != 2 || reviews.Reviews[1].Comment != "Too loud" {
		t.Errorf("reviews = %+v", reviews.Reviews)
	}
}

func TestRate_UsesDefaultComment(t *testing.T) {
	b := resource.NewMemoryBackend()
	ctx := context.Background()

	if _, err := newService(t, b, Config{}).Rate(ctx, 100, 1002, 4); err != nil {
		t.Fatalf("Rate() error = %v", err)
	}
	reviews, err := newService(t, b, Config{}).ListReviews(ctx, 1002)
	if err != nil {
		t.Fatalf("ListReviews() error = %v", err)
	}
	if got := reviews.Reviews[len(reviews.Reviews)-1]; got.Comment != RateComment || got.Rating != 4 {
		t.Errorf("rated review = %+v", got)
	}

	_, err = newService(t, b, Config{}).Rate(ctx, 100, 1003, 6)
	if !errors.Is(err, ErrInvalidRating) {
		t.Errorf("Rate(6) error = %v, want ErrInvalidRating", err)
	}
}

func TestPurchase(t *testing.T) {
	svc, b := seededService(t)
	ctx := context.Background()
	if _, err := svc.ListUsers(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	writes := b.Writes()

	resp, err := svc.Purchase(ctx, 100, 1002)
	if err != nil {
		t.Fatalf("Purchase() error = %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("Purchase() = %+v", resp)
	}
	if b.Writes() != writes {
		t.Error("Purchase() must not write")
	}

	if _, err := svc.Purchase(ctx, 1, 1002); !errors.Is(err, models.ErrUserNotFound) {
		t.Errorf("Purchase(unknown user) error = %v", err)
	}
	if _, err := svc.Purchase(ctx, 100, 1); !errors.Is(err, models.ErrProductNotFound) {
		t.Errorf("Purchase(unknown product) error = %v", err)
	}
}

func TestDelete_Cascades(t *testing.T) {
	b := resource.NewMemoryBackend()
	ctx := context.Background()

	resp, err := newService(t, b, Config{}).DeleteUser(ctx, 101)
	if err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	if resp.ID != 101 || resp.RemovedReviews != 2 || resp.Message != "User deleted successfully." {
		t.Errorf("DeleteUser() = %+v", resp)
	}

	presp, err := newService(t, b, Config{}).DeleteProduct(ctx, 1000)
	if err != nil {
		t.Fatalf("DeleteProduct() error = %v", err)
	}
	if presp.RemovedReviews != 1 || presp.Message != "Product deleted successfully." {
		t.Errorf("DeleteProduct() = %+v", presp)
	}

	svc := newService(t, b, Config{})
	products, err := svc.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products.Products) != 3 {
		t.Errorf("products = %d, want 3", len(products.Products))
	}
	if got := len(svc.Store().Reviews()); got != 1 {
		t.Errorf("reviews = %d, want 1", got)
	}

	if _, err := svc.DeleteUser(ctx, 101); !errors.Is(err, models.ErrUserNotFound) {
		t.Errorf("second DeleteUser() error = %v", err)
	}
	if _, err := svc.DeleteProduct(ctx, 1000); !errors.Is(err, models.ErrProductNotFound) {
		t.Errorf("second DeleteProduct() error = %v", err)
	}
}

func TestRecommend(t *testing.T) {
	b := resource.NewMemoryBackend()
	ctx := context.Background()

	// Alice's last review is the mouse; both Electronics products are reviewed.
	resp, err := newService(t, b, Config{}).Recommend(ctx, 100)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.TargetCategory != "Electronics" || len(resp.Recommendations) != 0 {
		t.Errorf("Recommend() = %+v", resp)
	}
	if resp.Message != "No new recommendations available in category Electronics." {
		t.Errorf("Message = %q", resp.Message)
	}

	for _, name := range []string{"USB Hub", "Monitor", "Webcam", "Speaker"} {
		if _, err := newService(t, b, Config{}).AddProduct(ctx, AddProductRequest{
			Name: name, Category: "Electronics", Price: decimal.NewFromInt(10),
		}); err != nil {
			t.Fatalf("AddProduct(%s) error = %v", name, err)
		}
	}
	// Monitor (1005) gets a rating from Bob so it ranks first.
	if _, err := newService(t, b, Config{}).Rate(ctx, 101, 1005, 4); err != nil {
		t.Fatalf("Rate() error = %v", err)
	}

	resp, err = newService(t, b, Config{}).Recommend(ctx, 100)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if resp.Message != "" {
		t.Errorf("Message = %q, want empty", resp.Message)
	}
	ids := make([]int, 0, len(resp.Recommendations))
	for _, r := range resp.Recommendations {
		ids = append(ids, r.ID)
	}
	// Monitor first, then unrated products in catalog order, capped at 3.
	want := []int{1005, 1004, 1006}
	if len(ids) != len(want) {
		t.Fatalf("recommendations = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("recommendations = %v, want %v", ids, want)
		}
	}
	if resp.TotalCandidates != 4 {
		t.Errorf("TotalCandidates = %d, want 4", resp.TotalCandidates)
	}

	top, err := newService(t, b, Config{}).RecommendTop(ctx, 100, 1)
	if err != nil {
		t.Fatalf("RecommendTop(k=1) error = %v", err)
	}
	if len(top.Recommendations) != 1 || top.Recommendations[0].ID != 1005 || top.TotalCandidates != 4 {
		t.Errorf("RecommendTop(k=1) = %+v", top)
	}
	all, err := newService(t, b, Config{}).RecommendTop(ctx, 100, 1000)
	if err != nil {
		t.Fatalf("RecommendTop(k=1000) error = %v", err)
	}
	if len(all.Recommendations) != 4 {
		t.Errorf("RecommendTop(k=1000) returned %d, want 4", len(all.Recommendations))
	}
	if _, err := newService(t, b, Config{}).RecommendTop(ctx, 100, -1); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("RecommendTop(k=-1) error = %v, want ErrInvalidInput", err)
	}
}

func TestRecommend_Errors(t *testing.T) {
	b := resource.NewMemoryBackend()
	ctx := context.Background()

	if _, err := newService(t, b, Config{}).Recommend(ctx, 555); !errors.Is(err, models.ErrUserNotFound) {
		t.Errorf("Recommend(unknown) error = %v", err)
	}

	u, err := newService(t, b, Config{}).AddUser(ctx, AddUserRequest{Name: "Dana"})
	if err != nil {
		t.Fatalf("AddUser() error = %v", err)
	}
	_, err = newService(t, b, Config{}).Recommend(ctx, u.ID)
	if !errors.Is(err, models.ErrNoHistory) {
		t.Errorf("Recommend(no history) error = %v", err)
	}
	if ErrorMessage(err) != "User has no review history for recommendations." {
		t.Errorf("ErrorMessage() = %q", ErrorMessage(err))
	}
}

func TestRecommend_DanglingReview(t *testing.T) {
	b := resource.NewMemoryBackend()
	b.Put(resource.Products, []byte(`[{"id":1000,"name":"Lamp","category":"Home","price":5.00}]`))
	b.Put(resource.Users, []byte(`[{"id":100,"name":"Eve"}]`))
	b.Put(resource.Reviews, []byte(`[{"user_id":100,"product_id":1000,"rating":4,"comment":""},`+
		`{"user_id":100,"product_id":1999,"rating":5,"comment":"gone"}]`))

	_, err := newService(t, b, Config{}).Recommend(context.Background(), 100)
	if !errors.Is(err, models.ErrDataIntegrity) {
		t.Fatalf("Recommend() error = %v, want ErrDataIntegrity", err)
	}
	if ErrorMessage(err) != "Internal data error: Last reviewed product missing." {
		t.Errorf("ErrorMessage() = %q", ErrorMessage(err))
	}
}

// An empty store without seeding: first user is 100, first product 1000.
func TestEndToEnd_EmptyStore(t *testing.T) {
	b := resource.NewMemoryBackend()
	ctx := context.Background()
	run := func() *Service { return newService(t, b, Config{}, store.WithoutSeed()) }

	u, err := run().AddUser(ctx, AddUserRequest{Name: "Alice"})
	if err != nil || u.ID != 100 {
		t.Fatalf("AddUser() = %+v, %v; want id 100", u, err)
	}
	p, err := run().AddProduct(ctx, AddProductRequest{Name: "Widget", Category: "Gadgets", Price: decimal.RequireFromString("9.99")})
	if err != nil || p.ID != 1000 {
		t.Fatalf("AddProduct() = %+v, %v; want id 1000", p, err)
	}
	r, err := run().AddReview(ctx, AddReviewRequest{UserID: 100, ProductID: 1000, Rating: 5, Comment: "Great"})
	if err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}
	out, code := Render(r, nil)
	if code != ExitOK || !strings.Contains(out, `"new_avg_rating":5.00`) {
		t.Errorf("Render(AddReview) = %s, %d", out, code)
	}

	rec, err := run().Recommend(ctx, 100)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	out, _ = Render(rec, nil)
	want := `{"status":"success","user_id":100,"target_category":"Gadgets","recommendations":[],` +
		`"message":"No new recommendations available in category Gadgets."}`
	if out != want {
		t.Errorf("Render(Recommend) =\n%s\nwant\n%s", out, want)
	}
}

func TestWriteFailure_StrictAndLenient(t *testing.T) {
	ctx := context.Background()
	diskFull := errors.New("disk full")

	t.Run("lenient", func(t *testing.T) {
		b := resource.NewMemoryBackend()
		if _, err := newService(t, b, Config{}).ListUsers(ctx); err != nil {
			t.Fatalf("seed: %v", err)
		}
		b.FailWrites(resource.Users, diskFull)

		resp, err := newService(t, b, Config{}).AddUser(ctx, AddUserRequest{Name: "Frank"})
		if err != nil {
			t.Fatalf("AddUser() error = %v, want success", err)
		}
		if resp.ID != 102 {
			t.Errorf("ID = %d, want 102", resp.ID)
		}

		// The change was lost: a new process does not see Frank.
		users, err := newService(t, b, Config{}).ListUsers(ctx)
		if err != nil {
			t.Fatalf("ListUsers() error = %v", err)
		}
		if len(users.Users) != 2 {
			t.Errorf("users = %d, want 2", len(users.Users))
		}
	})

	t.Run("strict", func(t *testing.T) {
		b := resource.NewMemoryBackend()
		if _, err := newService(t, b, Config{}).ListUsers(ctx); err != nil {
			t.Fatalf("seed: %v", err)
		}
		b.FailWrites(resource.Users, diskFull)

		_, err := newService(t, b, Config{StrictWrites: true}).AddUser(ctx, AddUserRequest{Name: "Frank"})
		if !errors.Is(err, models.ErrResourceAccess) {
			t.Fatalf("AddUser() error = %v, want ErrResourceAccess", err)
		}
		out, code := Render(nil, err)
		if code != ExitError || !strings.Contains(out, `"code":"RESOURCE_ACCESS"`) {
			t.Errorf("Render() = %s, %d", out, code)
		}
	})
}

func TestRequestIDPropagates(t *testing.T) {
	svc, _ := seededService(t)
	ctx := logging.ContextWithRequestID(context.Background(), "req-123")

	ctx2, done := svc.begin(ctx, OpListUsers)
	done(nil)
	if got := logging.RequestIDFromContext(ctx2); got != "req-123" {
		t.Errorf("request id = %q, want req-123", got)
	}
	if got := logging.OperationFromContext(ctx2); got != OpListUsers {
		t.Errorf("operation = %q, want %q", got, OpListUsers)
	}

	ctx3, done := svc.begin(context.Background(), OpListUsers)
	done(nil)
	if logging.RequestIDFromContext(ctx3) == "" {
		t.Error("begin() should generate a request id")
	}
}
