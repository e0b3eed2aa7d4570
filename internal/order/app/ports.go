package app

import (
	"context"

	"github.com/recirculate/storefront/internal/order/domain"
)

type OrderAPI interface {
	ListByClient(ctx context.Context, clientID int) ([]domain.Order, error)
	Get(ctx context.Context, orderID int) (domain.Order, error)
	// Update sends the full order payload; the backend has no partial update.
	Update(ctx context.Context, order domain.Order) (domain.Order, error)
	Bill(ctx context.Context, billID int) (domain.Bill, error)
	LinesByOrder(ctx context.Context, orderID int) ([]domain.OrderLine, error)
}
