package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/personnalite/estoque-api/internal/application/service"
	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/internal/domain/repository"
)

// memoryProductRepository is an in-memory ProductRepository for handler tests.
type memoryProductRepository struct {
	products map[uuid.UUID]*entity.Product
}

func newMemoryProductRepository() *memoryProductRepository {
	return &memoryProductRepository{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *memoryProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *memoryProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if p, ok := f.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

func (f *memoryProductRepository) GetByName(ctx context.Context, name string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Name == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *memoryProductRepository) Update(ctx context.Context, product *entity.Product) error {
	clone := *product
	f.products[product.ID] = &clone
	return nil
}

func (f *memoryProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *memoryProductRepository) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *memoryProductRepository) AdjustStock(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	p, ok := f.products[id]
	if !ok || p.Stock+delta < 0 {
		return false, nil
	}
	p.Stock += delta
	return true, nil
}

func newProductRouter(t *testing.T) (*gin.Engine, *memoryProductRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newMemoryProductRepository()
	h := NewProductHandler(service.NewProductService(repo))

	router := gin.New()
	router.POST("/products", h.Create)
	router.GET("/products", h.List)
	return router, repo
}

func TestCreateProduct(t *testing.T) {
	router, repo := newProductRouter(t)

	w := doJSON(router, http.MethodPost, "/products", "", gin.H{
		"name":     "Monster Energy",
		"price":    12.5,
		"stock":    10,
		"category": "BEBIDA_ENERGETICA",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, repo.products, 1)
}

func TestCreateProductWithoutCategoryFailsValidation(t *testing.T) {
	router, repo := newProductRouter(t)

	w := doJSON(router, http.MethodPost, "/products", "", gin.H{
		"name":  "Monster Energy",
		"price": 12.5,
		"stock": 10,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, repo.products)
}

func TestCreateProductWithUnknownCategoryFailsValidation(t *testing.T) {
	router, repo := newProductRouter(t)

	w := doJSON(router, http.MethodPost, "/products", "", gin.H{
		"name":     "Monster Energy",
		"price":    12.5,
		"category": "BEBIDA_ALCOOLICA",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, repo.products)
}
