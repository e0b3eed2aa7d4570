package app

import (
	"context"
	"errors"
	"strings"

	"github.com/recirculate/storefront/internal/catalog/domain"
)

var ErrInvalidInput = errors.New("invalid input")

// Service fronts the product and category endpoints for both the shop pages
// and the admin panel. Validation happens here so the admin commands fail
// fast instead of bouncing off the backend.
type Service struct {
	products   ProductAPI
	categories CategoryAPI
}

func NewService(products ProductAPI, categories CategoryAPI) *Service {
	return &Service{
		products:   products,
		categories: categories,
	}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	if id <= 0 {
		return domain.Product{}, ErrInvalidInput
	}
	return s.products.Get(ctx, id)
}

func (s *Service) CreateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.Name = strings.TrimSpace(p.Name)

	if p.Name == "" || p.Price <= 0 || p.Stock < 0 || p.CategoryID <= 0 {
		return domain.Product{}, ErrInvalidInput
	}

	return s.products.Create(ctx, p)
}

func (s *Service) UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.Name = strings.TrimSpace(p.Name)

	if p.IDKey <= 0 || p.Name == "" || p.Price <= 0 || p.Stock < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	return s.products.Update(ctx, p)
}

func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.products.Delete(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, name string) (domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Category{}, ErrInvalidInput
	}
	return s.categories.Create(ctx, domain.Category{Name: name})
}

func (s *Service) UpdateCategory(ctx context.Context, c domain.Category) (domain.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.IDKey <= 0 || c.Name == "" {
		return domain.Category{}, ErrInvalidInput
	}
	return s.categories.Update(ctx, c)
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidInput
	}
	return s.categories.Delete(ctx, id)
}
