package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/recirculate/storefront/internal/review/domain"
)

var ErrInvalidReview = errors.New("rating must be 1-5 and comment non-empty")

// Service keeps a per-product view of reviews and applies writes in two
// phases: a provisional local entry first, then the server's record replaces
// it once the create call lands. A failed create discards the provisional
// entry, so the view never keeps an entry the backend rejected.
type Service struct {
	mu   sync.Mutex
	view map[int][]domain.Review

	api ReviewAPI
}

func NewService(api ReviewAPI) *Service {
	return &Service{
		view: make(map[int][]domain.Review),
		api:  api,
	}
}

// Refresh replaces the local view for a product with server truth.
func (s *Service) Refresh(ctx context.Context, productID int) ([]domain.Review, error) {
	reviews, err := s.api.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.view[productID] = reviews
	s.mu.Unlock()

	return reviews, nil
}

// Reviews returns the current view, provisional entries included.
func (s *Service) Reviews(productID int) []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Review, len(s.view[productID]))
	copy(out, s.view[productID])
	return out
}

// Create posts a review. The caller sees the provisional entry through
// Reviews while the request is in flight.
func (s *Service) Create(ctx context.Context, productID, clientID, rating int, comment string) (domain.Review, error) {
	comment = strings.TrimSpace(comment)
	if rating < 1 || rating > 5 || comment == "" {
		return domain.Review{}, ErrInvalidReview
	}

	provisional := domain.Review{
		Rating:        rating,
		Comment:       comment,
		ProductID:     productID,
		ClientID:      clientID,
		Provisional:   true,
		ProvisionalID: uuid.NewString(),
	}

	s.mu.Lock()
	s.view[productID] = append(s.view[productID], provisional)
	s.mu.Unlock()

	created, err := s.api.Create(ctx, domain.Review{
		Rating:    rating,
		Comment:   comment,
		ProductID: productID,
		ClientID:  clientID,
	})
	if err != nil {
		s.discard(productID, provisional.ProvisionalID)
		return domain.Review{}, err
	}

	s.reconcile(productID, provisional.ProvisionalID, created)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id, rating int, comment string) (domain.Review, error) {
	comment = strings.TrimSpace(comment)
	if rating < 1 || rating > 5 || comment == "" {
		return domain.Review{}, ErrInvalidReview
	}

	updated, err := s.api.Update(ctx, id, rating, comment)
	if err != nil {
		return domain.Review{}, err
	}

	s.mu.Lock()
	for i, r := range s.view[updated.ProductID] {
		if r.IDKey == updated.IDKey {
			s.view[updated.ProductID][i] = updated
			break
		}
	}
	s.mu.Unlock()

	return updated, nil
}

func (s *Service) Delete(ctx context.Context, productID, id int) error {
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	entries := s.view[productID]
	for i, r := range entries {
		if r.IDKey == id {
			s.view[productID] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	return nil
}

func (s *Service) reconcile(productID int, provisionalID string, created domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.view[productID] {
		if r.ProvisionalID == provisionalID {
			s.view[productID][i] = created
			return
		}
	}
	// Provisional entry gone (a Refresh raced the create); server truth will
	// carry the record on the next Refresh.
}

func (s *Service) discard(productID int, provisionalID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.view[productID]
	for i, r := range entries {
		if r.ProvisionalID == provisionalID {
			s.view[productID] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}
