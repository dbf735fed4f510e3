package request

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest is the request body for POST /products.
type CreateProductRequest struct {
	Barcode     string          `json:"barcode" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
}

// UpdateProductRequest is the request body for PUT /products/:id. Absent
// fields stay untouched.
type UpdateProductRequest struct {
	Barcode     *string          `json:"barcode"`
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int64           `json:"stock"`
}
