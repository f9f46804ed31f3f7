package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/internal/domain/enum"
	"github.com/personnalite/estoque-api/internal/domain/repository"
	"github.com/personnalite/estoque-api/pkg/apperror"
	"github.com/personnalite/estoque-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

const defaultMinStock = 5

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name     string
	Price    decimal.Decimal
	Stock    int
	MinStock *int
	Category enum.ProductCategory
	Active   *bool
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if err := validatePrice(input.Price); err != nil {
		return nil, err
	}
	if !input.Category.Valid() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "category", Message: "Categoria deve ser uma opção válida"},
		})
	}

	existing, err := s.productRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Produto com nome \"" + input.Name + "\" já existe")
	}

	minStock := defaultMinStock
	if input.MinStock != nil {
		minStock = *input.MinStock
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	product := &entity.Product{
		Name:     input.Name,
		Price:    input.Price.Round(2),
		Stock:    input.Stock,
		MinStock: minStock,
		Category: input.Category,
		Active:   active,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts lists products with optional name filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// UpdateProductInput represents the update product input; nil fields are
// left unchanged.
type UpdateProductInput struct {
	ID       uuid.UUID
	Name     *string
	Price    *decimal.Decimal
	Stock    *int
	MinStock *int
	Category *enum.ProductCategory
	Active   *bool
}

// UpdateProduct updates an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil && *input.Name != product.Name {
		duplicate, err := s.productRepo.GetByName(ctx, *input.Name)
		if err != nil {
			return nil, err
		}
		if duplicate != nil && duplicate.ID != product.ID {
			return nil, apperror.NewConflictError("Produto com nome \"" + *input.Name + "\" já existe")
		}
		product.Name = *input.Name
	}

	if input.Price != nil {
		if err := validatePrice(*input.Price); err != nil {
			return nil, err
		}
		product.Price = input.Price.Round(2)
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "stock", Message: "Estoque não pode ser negativo"},
			})
		}
		product.Stock = *input.Stock
	}
	if input.MinStock != nil {
		product.MinStock = *input.MinStock
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "category", Message: "Categoria deve ser uma opção válida"},
			})
		}
		product.Category = *input.Category
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct deletes a product by ID
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}

	return s.productRepo.Delete(ctx, id)
}

// AdjustStock adds delta (which may be negative) to a product's stock.
func (s *ProductService) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (*entity.Product, error) {
	ok, err := s.productRepo.AdjustStock(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if !ok {
		product, err := s.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		return nil, apperror.NewBadRequestError("Estoque insuficiente")
	}

	return s.GetProduct(ctx, id)
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "Preço deve ser maior ou igual a zero"},
		})
	}
	return nil
}
