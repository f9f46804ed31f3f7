package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByName matches the exact name, case sensitively. It backs the
	// duplicate-name conflict check.
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// AdjustStock atomically adds delta to the product's stock, refusing to
	// go below zero. Returns (false, nil) when the product is missing or the
	// stock would go negative.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int) (bool, error)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	// Name is a case-insensitive substring filter on the product name.
	Name       string
	ActiveOnly bool
}
