package entity

import (
	"github.com/shopspring/decimal"
)

// SaleItem is one line of a sale. The unit price is captured from the request
// at sale time, not re-read from the catalog, so promotional prices survive
// later catalog changes. Immutable once persisted.
type SaleItem struct {
	ID        int64           `json:"id"`
	SaleID    int64           `json:"sale_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// NewSaleItem validates one line item and computes its subtotal in decimal
// arithmetic.
func NewSaleItem(productID int64, quantity int, unitPrice decimal.Decimal) (*SaleItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &SaleItem{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}
