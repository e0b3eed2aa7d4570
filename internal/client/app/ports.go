package app

import (
	"context"

	"github.com/recirculate/storefront/internal/client/domain"
)

type ClientAPI interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id int) (domain.Client, error)
	Update(ctx context.Context, c domain.Client) (domain.Client, error)
}
