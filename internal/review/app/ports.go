package app

import (
	"context"

	"github.com/recirculate/storefront/internal/review/domain"
)

type ReviewAPI interface {
	ListByProduct(ctx context.Context, productID int) ([]domain.Review, error)
	Create(ctx context.Context, r domain.Review) (domain.Review, error)
	Update(ctx context.Context, id int, rating int, comment string) (domain.Review, error)
	Delete(ctx context.Context, id int) error
}
