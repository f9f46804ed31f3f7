package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/internal/domain/enum"
	"github.com/personnalite/estoque-api/internal/domain/repository"
	"github.com/personnalite/estoque-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepository is an in-memory ProductRepository for service tests.
type fakeProductRepository struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepository() *fakeProductRepository {
	return &fakeProductRepository{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeProductRepository) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Name == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepository) Update(ctx context.Context, product *entity.Product) error {
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *fakeProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepository) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	p, ok := f.products[id]
	if !ok || p.Stock+delta < 0 {
		return false, nil
	}
	p.Stock += delta
	return true, nil
}

func newTestProductService() (*ProductService, *fakeProductRepository) {
	repo := newFakeProductRepository()
	return NewProductService(repo), repo
}

func createInput(name string, price float64) *CreateProductInput {
	return &CreateProductInput{
		Name:     name,
		Price:    decimal.NewFromFloat(price),
		Stock:    10,
		Category: enum.CategoryNaturalDrink,
	}
}

func TestCreateProduct(t *testing.T) {
	svc, _ := newTestProductService()

	product, err := svc.CreateProduct(context.Background(), createInput("Água", 3))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, product.ID)
	assert.Equal(t, "Água", product.Name)
	assert.True(t, product.Active, "products default to active")
	assert.Equal(t, defaultMinStock, product.MinStock)
}

// A duplicate name conflicts; the store retains only the first product.
func TestCreateProductDuplicateName(t *testing.T) {
	svc, repo := newTestProductService()

	first, err := svc.CreateProduct(context.Background(), createInput("X", 5))
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), createInput("X", 7))
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	require.Len(t, repo.products, 1)
	kept, err := svc.GetProduct(context.Background(), first.ID)
	require.NoError(t, err)
	assert.True(t, kept.Price.Equal(decimal.NewFromInt(5)))
}

// Name matching for conflicts is exact and case sensitive.
func TestCreateProductNameConflictIsCaseSensitive(t *testing.T) {
	svc, _ := newTestProductService()

	_, err := svc.CreateProduct(context.Background(), createInput("Powerade", 7))
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), createInput("powerade", 7))
	assert.NoError(t, err)
}

func TestCreateProductNegativePrice(t *testing.T) {
	svc, repo := newTestProductService()

	_, err := svc.CreateProduct(context.Background(), createInput("Água", -1))
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
	assert.Empty(t, repo.products)
}

func TestCreateProductInvalidCategory(t *testing.T) {
	svc, _ := newTestProductService()

	input := createInput("Água", 3)
	input.Category = "CERVEJA"
	_, err := svc.CreateProduct(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := newTestProductService()

	_, err := svc.GetProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _ := newTestProductService()

	name := "Novo"
	_, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{ID: uuid.New(), Name: &name})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestUpdateProductRenameConflict(t *testing.T) {
	svc, _ := newTestProductService()

	_, err := svc.CreateProduct(context.Background(), createInput("Água", 3))
	require.NoError(t, err)
	powerade, err := svc.CreateProduct(context.Background(), createInput("Powerade", 7))
	require.NoError(t, err)

	name := "Água"
	_, err = svc.UpdateProduct(context.Background(), &UpdateProductInput{ID: powerade.ID, Name: &name})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateProductKeepingOwnNameIsNotAConflict(t *testing.T) {
	svc, _ := newTestProductService()

	product, err := svc.CreateProduct(context.Background(), createInput("Água", 3))
	require.NoError(t, err)

	name := "Água"
	price := decimal.NewFromFloat(3.5)
	updated, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{
		ID:    product.ID,
		Name:  &name,
		Price: &price,
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(decimal.NewFromFloat(3.5)))
}

func TestUpdateProductPartialLeavesOtherFields(t *testing.T) {
	svc, _ := newTestProductService()

	product, err := svc.CreateProduct(context.Background(), createInput("Água", 3))
	require.NoError(t, err)

	stock := 42
	updated, err := svc.UpdateProduct(context.Background(), &UpdateProductInput{ID: product.ID, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 42, updated.Stock)
	assert.Equal(t, "Água", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(3)))
}

func TestDeleteProduct(t *testing.T) {
	svc, repo := newTestProductService()

	product, err := svc.CreateProduct(context.Background(), createInput("Água", 3))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(context.Background(), product.ID))
	assert.Empty(t, repo.products)

	err = svc.DeleteProduct(context.Background(), product.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestAdjustStock(t *testing.T) {
	svc, _ := newTestProductService()

	product, err := svc.CreateProduct(context.Background(), createInput("Água", 3))
	require.NoError(t, err)

	updated, err := svc.AdjustStock(context.Background(), product.ID, -1)
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Stock)

	_, err = svc.AdjustStock(context.Background(), product.ID, -100)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.AdjustStock(context.Background(), uuid.New(), -1)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
