package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/personnalite/estoque-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Price must reach clients as a plain JSON number, not the quoted
// string shopspring emits by default.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a product in the inventory
type Product struct {
	ID        uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	Name      string               `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price     decimal.Decimal      `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock     int                  `gorm:"not null;default:0" json:"stock"`
	MinStock  int                  `gorm:"not null;default:5" json:"min_stock"`
	Category  enum.ProductCategory `gorm:"size:50;not null" json:"category"`
	Active    bool                 `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// LowStock reports whether the product is at or below its minimum stock.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
