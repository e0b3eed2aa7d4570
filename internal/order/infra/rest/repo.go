package rest

import (
	"context"
	"fmt"

	"github.com/recirculate/storefront/internal/api"
	"github.com/recirculate/storefront/internal/order/domain"
)

// OrderAPI maps the order endpoints onto the gateway. It serves both the
// history service (reads, cancel) and the checkout orchestrator (the four
// creation calls).
type OrderAPI struct {
	c *api.Client
}

func NewOrderAPI(c *api.Client) *OrderAPI {
	return &OrderAPI{c: c}
}

func (r *OrderAPI) ListByClient(ctx context.Context, clientID int) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.c.Get(ctx, fmt.Sprintf("/orders/by_client/%d", clientID), &orders)
	return orders, err
}

func (r *OrderAPI) Get(ctx context.Context, orderID int) (domain.Order, error) {
	var order domain.Order
	err := r.c.Get(ctx, fmt.Sprintf("/orders/%d", orderID), &order)
	return order, err
}

func (r *OrderAPI) Update(ctx context.Context, order domain.Order) (domain.Order, error) {
	var updated domain.Order
	err := r.c.Put(ctx, fmt.Sprintf("/orders/%d", order.IDKey), order, &updated)
	return updated, err
}

func (r *OrderAPI) Bill(ctx context.Context, billID int) (domain.Bill, error) {
	var bill domain.Bill
	err := r.c.Get(ctx, fmt.Sprintf("/bills/%d", billID), &bill)
	return bill, err
}

func (r *OrderAPI) LinesByOrder(ctx context.Context, orderID int) ([]domain.OrderLine, error) {
	var lines []domain.OrderLine
	err := r.c.Get(ctx, fmt.Sprintf("/order_details/by_order/%d", orderID), &lines)
	return lines, err
}

func (r *OrderAPI) CreateAddress(ctx context.Context, draft domain.AddressDraft) (domain.Address, error) {
	var created domain.Address
	err := r.c.Post(ctx, "/addresses", draft, &created)
	return created, err
}

func (r *OrderAPI) CreateBill(ctx context.Context, draft domain.BillDraft) (domain.Bill, error) {
	var created domain.Bill
	err := r.c.Post(ctx, "/bills", draft, &created)
	return created, err
}

func (r *OrderAPI) CreateOrder(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	var created domain.Order
	err := r.c.Post(ctx, "/orders", draft, &created)
	return created, err
}

func (r *OrderAPI) CreateOrderLine(ctx context.Context, draft domain.LineDraft) (domain.OrderLine, error) {
	var created domain.OrderLine
	err := r.c.Post(ctx, "/order_details", draft, &created)
	return created, err
}
