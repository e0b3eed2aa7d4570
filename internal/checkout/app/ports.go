package app

import (
	"context"

	"github.com/recirculate/storefront/internal/checkout/domain"
	orderdomain "github.com/recirculate/storefront/internal/order/domain"
)

// CartSource is the orchestrator's view of the cart. Total comes from the
// add-time price snapshots; prices are not re-fetched at checkout.
type CartSource interface {
	Lines() []domain.Line
	Total() float64
	Clear()
}

// IdentitySource answers whether a client is logged in and who they are.
type IdentitySource interface {
	CurrentClientID() (int, bool)
}

// OrderWriter issues the four creation calls of the checkout protocol. The
// backend offers no transaction spanning them; ordering and failure handling
// are the orchestrator's problem.
type OrderWriter interface {
	CreateAddress(ctx context.Context, draft orderdomain.AddressDraft) (orderdomain.Address, error)
	CreateBill(ctx context.Context, draft orderdomain.BillDraft) (orderdomain.Bill, error)
	CreateOrder(ctx context.Context, draft orderdomain.OrderDraft) (orderdomain.Order, error)
	CreateOrderLine(ctx context.Context, draft orderdomain.LineDraft) (orderdomain.OrderLine, error)
}
