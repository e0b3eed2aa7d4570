package rest

import (
	"context"
	"fmt"

	"github.com/recirculate/storefront/internal/api"
	"github.com/recirculate/storefront/internal/review/domain"
)

type ReviewAPI struct {
	c *api.Client
}

func NewReviewAPI(c *api.Client) *ReviewAPI {
	return &ReviewAPI{c: c}
}

func (r *ReviewAPI) ListByProduct(ctx context.Context, productID int) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.c.Get(ctx, fmt.Sprintf("/reviews?product_id=%d", productID), &reviews)
	return reviews, err
}

func (r *ReviewAPI) Create(ctx context.Context, review domain.Review) (domain.Review, error) {
	body := map[string]any{
		"rating":     review.Rating,
		"comment":    review.Comment,
		"product_id": review.ProductID,
		"client_id":  review.ClientID,
	}
	var created domain.Review
	err := r.c.Post(ctx, "/reviews", body, &created)
	return created, err
}

func (r *ReviewAPI) Update(ctx context.Context, id, rating int, comment string) (domain.Review, error) {
	body := map[string]any{"rating": rating, "comment": comment}
	var updated domain.Review
	err := r.c.Put(ctx, fmt.Sprintf("/reviews/%d", id), body, &updated)
	return updated, err
}

func (r *ReviewAPI) Delete(ctx context.Context, id int) error {
	return r.c.Delete(ctx, fmt.Sprintf("/reviews/%d", id))
}
