package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Price    float64 `json:"price" binding:"min=0"`
	Stock    int     `json:"stock" binding:"min=0"`
	MinStock *int    `json:"min_stock" binding:"omitempty,min=0"`
	Category string  `json:"category"`
	Active   *bool   `json:"active"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name     *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
	Stock    *int     `json:"stock" binding:"omitempty,min=0"`
	MinStock *int     `json:"min_stock" binding:"omitempty,min=0"`
	Category *string  `json:"category"`
	Active   *bool    `json:"active"`
}

// AdjustStockRequest represents a stock adjustment request
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Name       string `form:"name"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
