package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Stock is a plain counter decremented by the sale
// engine; it may legitimately read negative after an oversell, nothing clamps
// it.
type Product struct {
	ID          int64           `json:"id"`
	Barcode     string          `json:"barcode"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewProduct validates and builds an unpersisted product.
func NewProduct(barcode, name, description string, price decimal.Decimal, stock int64) (*Product, error) {
	if barcode == "" {
		return nil, ErrBarcodeRequired
	}
	if name == "" {
		return nil, ErrNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &Product{
		Barcode:     barcode,
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}, nil
}

// ProductPatch is an explicit field diff for a partial update. Nil fields are
// left untouched; the repository renders only the set fields into the UPDATE,
// parameterized, instead of concatenating SQL from request input.
type ProductPatch struct {
	Barcode     *string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Stock       *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Barcode == nil && p.Name == nil && p.Description == nil &&
		p.Price == nil && p.Stock == nil
}
