package entity

import (
	"encoding/json"
	"testing"

	"github.com/personnalite/estoque-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductPriceMarshalsAsNumber(t *testing.T) {
	p := Product{
		Name:     "Monster Energy",
		Price:    decimal.NewFromFloat(12.5),
		Category: enum.CategoryEnergyDrink,
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"price":12.5`)
	assert.NotContains(t, string(data), `"price":"12.5"`)
}

func TestProductLowStock(t *testing.T) {
	p := Product{Stock: 5, MinStock: 5}
	assert.True(t, p.LowStock())

	p.Stock = 6
	assert.False(t, p.LowStock())
}
