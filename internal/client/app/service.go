package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/recirculate/storefront/internal/client/domain"
)

var ErrNotFound = errors.New("client not found")

// Service reads and edits client (profile) records.
type Service struct {
	api ClientAPI
}

func NewService(api ClientAPI) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	return s.api.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (domain.Client, error) {
	return s.api.Get(ctx, id)
}

// GetByEmail lists and filters; the backend has no email lookup endpoint.
func (s *Service) GetByEmail(ctx context.Context, email string) (domain.Client, error) {
	clients, err := s.api.List(ctx)
	if err != nil {
		return domain.Client{}, err
	}
	for _, c := range clients {
		if c.Email == email {
			return c, nil
		}
	}
	return domain.Client{}, fmt.Errorf("%w: %s", ErrNotFound, email)
}

func (s *Service) Update(ctx context.Context, c domain.Client) (domain.Client, error) {
	if c.IDKey <= 0 || strings.TrimSpace(c.Email) == "" {
		return domain.Client{}, errors.New("client id and email are required")
	}
	return s.api.Update(ctx, c)
}
