package app

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/recirculate/storefront/internal/cart/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Service owns the visitor's cart: the in-memory lines plus their persisted
// copy. Persistence is best-effort — a storage failure never fails the
// mutation that triggered it, the session just loses durability.
type Service struct {
	mu    sync.Mutex
	lines []domain.Line

	store Store
	log   *slog.Logger
}

// NewService loads whatever the store holds. Missing or unreadable state
// means an empty cart; the caller is never told.
func NewService(store Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}

	lines, err := store.Load()
	if err != nil {
		log.Warn("cart state unreadable, starting empty", slog.Any("err", err))
		lines = nil
	}

	return &Service{
		lines: lines,
		store: store,
		log:   log,
	}
}

// Add puts quantity units of product in the cart. If a line for the product
// already exists its quantity is incremented, never duplicated. Stock is not
// checked here; only the backend sees stock, at order time.
func (s *Service) Add(product domain.ProductRef, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.IDKey == product.IDKey {
			s.lines[i].Quantity += quantity
			s.persist()
			return nil
		}
	}

	s.lines = append(s.lines, domain.Line{Product: product, Quantity: quantity})
	s.persist()
	return nil
}

// Remove drops the line for productID. Removing an absent product is a no-op.
func (s *Service) Remove(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.IDKey == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
}

// Lines returns a copy in insertion order.
func (s *Service) Lines() []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is recomputed from the lines on every call.
func (s *Service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// Count is the sum of line quantities.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// persist writes the full line set. Callers hold s.mu.
func (s *Service) persist() {
	if err := s.store.Save(s.lines); err != nil {
		s.log.Warn("cart persist failed", slog.Any("err", err))
	}
}
