package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/recirculate/storefront/internal/order/domain"
)

// Service is the order-history side of the storefront: listing, inspecting
// and cancelling orders that already exist. Order creation lives in checkout.
type Service struct {
	api OrderAPI
}

func NewService(api OrderAPI) *Service {
	return &Service{api: api}
}

// ListByClient returns the client's orders, most recent first.
func (s *Service) ListByClient(ctx context.Context, clientID int) ([]domain.Order, error) {
	orders, err := s.api.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].ParsedDate().After(orders[j].ParsedDate())
	})

	return orders, nil
}

func (s *Service) Get(ctx context.Context, orderID int) (domain.Order, error) {
	return s.api.Get(ctx, orderID)
}

func (s *Service) BillFor(ctx context.Context, order domain.Order) (domain.Bill, error) {
	return s.api.Bill(ctx, order.BillID)
}

func (s *Service) LinesFor(ctx context.Context, orderID int) ([]domain.OrderLine, error) {
	return s.api.LinesByOrder(ctx, orderID)
}

// Cancel marks the order CANCELED and sends the complete payload back,
// whatever status it had before.
func (s *Service) Cancel(ctx context.Context, order domain.Order) (domain.Order, error) {
	order.Status = domain.StatusCanceled

	updated, err := s.api.Update(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("cancel order %d: %w", order.IDKey, err)
	}

	return updated, nil
}
