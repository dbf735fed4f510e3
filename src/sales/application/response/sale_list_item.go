package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleListItem is one row of the sales history listing.
type SaleListItem struct {
	ID            int64           `json:"id"`
	CustomerID    *int64          `json:"customer_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	TotalItems    int             `json:"total_items"`
	CreatedAt     time.Time       `json:"created_at"`
}
