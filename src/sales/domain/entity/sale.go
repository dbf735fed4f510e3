package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the aggregate root of a recorded sale. A nil CustomerID means a
// walk-in sale. ID and CreatedAt are assigned by the database inside the
// transaction that persists the sale; a Sale is never updated or deleted.
type Sale struct {
	ID            int64           `json:"id"`
	CustomerID    *int64          `json:"customer_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []SaleItem      `json:"items"`
}

// NewSale builds an unpersisted sale from validated items. The total is the
// exact decimal sum of the item subtotals; no floating point is involved, so
// fractional prices never drift across many line items.
func NewSale(customerID *int64, items []SaleItem, method PaymentMethod) (*Sale, error) {
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal)
	}

	return &Sale{
		CustomerID:    customerID,
		TotalAmount:   total,
		PaymentMethod: method,
		Items:         items,
	}, nil
}

// TotalItems returns the number of line items.
func (s *Sale) TotalItems() int {
	return len(s.Items)
}
