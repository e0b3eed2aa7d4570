package app

import (
	"context"
	"testing"

	"github.com/recirculate/storefront/internal/catalog/domain"
)

type fakeProductAPI struct {
	created []domain.Product
	deleted []int
}

func (f *fakeProductAPI) List(ctx context.Context) ([]domain.Product, error) { return nil, nil }
func (f *fakeProductAPI) Get(ctx context.Context, id int) (domain.Product, error) {
	return domain.Product{IDKey: id}, nil
}
func (f *fakeProductAPI) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	f.created = append(f.created, p)
	p.IDKey = 1
	return p, nil
}
func (f *fakeProductAPI) Update(ctx context.Context, p domain.Product) (domain.Product, error) {
	return p, nil
}
func (f *fakeProductAPI) Delete(ctx context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCategoryAPI struct{}

func (fakeCategoryAPI) List(ctx context.Context) ([]domain.Category, error) { return nil, nil }
func (fakeCategoryAPI) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	c.IDKey = 1
	return c, nil
}
func (fakeCategoryAPI) Update(ctx context.Context, c domain.Category) (domain.Category, error) {
	return c, nil
}
func (fakeCategoryAPI) Delete(ctx context.Context, id int) error { return nil }

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(&fakeProductAPI{}, fakeCategoryAPI{})

	t.Run("empty name -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), domain.Product{Name: "   ", Price: 10, CategoryID: 1})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("non-positive price -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), domain.Product{Name: "Tee", Price: 0, CategoryID: 1})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative stock -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), domain.Product{Name: "Tee", Price: 10, Stock: -1, CategoryID: 1})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("missing category -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), domain.Product{Name: "Tee", Price: 10})
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("valid product trims name", func(t *testing.T) {
		api := &fakeProductAPI{}
		svc := NewService(api, fakeCategoryAPI{})
		p, err := svc.CreateProduct(context.Background(), domain.Product{Name: "  Tee ", Price: 10, Stock: 3, CategoryID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Tee" || api.created[0].Name != "Tee" {
			t.Fatalf("expected trimmed name, got %q", p.Name)
		}
	})
}

func TestCategoryValidation(t *testing.T) {
	svc := NewService(&fakeProductAPI{}, fakeCategoryAPI{})

	if _, err := svc.CreateCategory(context.Background(), " "); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.UpdateCategory(context.Background(), domain.Category{IDKey: 0, Name: "x"}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.DeleteCategory(context.Background(), -1); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
