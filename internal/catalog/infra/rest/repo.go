package rest

import (
	"context"
	"fmt"

	"github.com/recirculate/storefront/internal/api"
	"github.com/recirculate/storefront/internal/catalog/domain"
)

type ProductAPI struct {
	c *api.Client
}

func NewProductAPI(c *api.Client) *ProductAPI {
	return &ProductAPI{c: c}
}

func (r *ProductAPI) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.c.Get(ctx, "/products", &products)
	return products, err
}

func (r *ProductAPI) Get(ctx context.Context, id int) (domain.Product, error) {
	var p domain.Product
	err := r.c.Get(ctx, fmt.Sprintf("/products/%d", id), &p)
	return p, err
}

func (r *ProductAPI) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	var created domain.Product
	err := r.c.Post(ctx, "/products", p, &created)
	return created, err
}

func (r *ProductAPI) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	var updated domain.Product
	err := r.c.Put(ctx, fmt.Sprintf("/products/%d", p.IDKey), p, &updated)
	return updated, err
}

func (r *ProductAPI) Delete(ctx context.Context, id int) error {
	return r.c.Delete(ctx, fmt.Sprintf("/products/%d", id))
}

type CategoryAPI struct {
	c *api.Client
}

func NewCategoryAPI(c *api.Client) *CategoryAPI {
	return &CategoryAPI{c: c}
}

func (r *CategoryAPI) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.c.Get(ctx, "/categories", &categories)
	return categories, err
}

func (r *CategoryAPI) Create(ctx context.Context, cat domain.Category) (domain.Category, error) {
	var created domain.Category
	err := r.c.Post(ctx, "/categories", cat, &created)
	return created, err
}

func (r *CategoryAPI) Update(ctx context.Context, cat domain.Category) (domain.Category, error) {
	var updated domain.Category
	err := r.c.Put(ctx, fmt.Sprintf("/categories/%d", cat.IDKey), cat, &updated)
	return updated, err
}

func (r *CategoryAPI) Delete(ctx context.Context, id int) error {
	return r.c.Delete(ctx, fmt.Sprintf("/categories/%d", id))
}
