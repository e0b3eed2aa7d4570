package localstore

import (
	"github.com/recirculate/storefront/internal/cart/domain"
	"github.com/recirculate/storefront/pkg/localstore"
)

// cartKey is the fixed name the cart record lives under, one record per
// installation.
const cartKey = "cart"

type CartStore struct {
	s *localstore.Store[[]domain.Line]
}

func NewCartStore(stateDir string) *CartStore {
	return &CartStore{s: localstore.New[[]domain.Line](stateDir)}
}

func (c *CartStore) Load() ([]domain.Line, error) {
	lines, _, err := c.s.Get(cartKey)
	return lines, err
}

func (c *CartStore) Save(lines []domain.Line) error {
	if lines == nil {
		lines = []domain.Line{}
	}
	return c.s.Put(cartKey, lines)
}
