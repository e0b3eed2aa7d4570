package app

import (
	"github.com/recirculate/storefront/internal/cart/domain"
)

// Store is the durable local home of the cart lines. Load reports no lines
// (not an error) when nothing has been persisted yet.
type Store interface {
	Load() ([]domain.Line, error)
	Save(lines []domain.Line) error
}
