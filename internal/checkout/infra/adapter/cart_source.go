package adapter

import (
	cartapp "github.com/recirculate/storefront/internal/cart/app"
	"github.com/recirculate/storefront/internal/checkout/domain"
)

// CartServiceSource exposes the cart service to the orchestrator in
// checkout's own terms.
type CartServiceSource struct {
	cart *cartapp.Service
}

func NewCartServiceSource(cart *cartapp.Service) *CartServiceSource {
	return &CartServiceSource{cart: cart}
}

func (a *CartServiceSource) Lines() []domain.Line {
	cartLines := a.cart.Lines()

	lines := make([]domain.Line, 0, len(cartLines))
	for _, l := range cartLines {
		lines = append(lines, domain.Line{
			ProductID: l.Product.IDKey,
			Quantity:  l.Quantity,
		})
	}
	return lines
}

func (a *CartServiceSource) Total() float64 {
	return a.cart.Total()
}

func (a *CartServiceSource) Clear() {
	a.cart.Clear()
}
