package request

import (
	"github.com/shopspring/decimal"
)

// RecordSaleItemRequest is one line item of a sale request. The unit price is
// supplied by the caller and trusted as-is (promotional pricing); the engine
// does not re-read the catalog price.
type RecordSaleItemRequest struct {
	ProductID int64           `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// RecordSaleRequest is the request body for POST /pos/sale. CustomerID is
// optional; nil means a walk-in sale.
type RecordSaleRequest struct {
	CustomerID    *int64                  `json:"customer_id"`
	Items         []RecordSaleItemRequest `json:"items" binding:"dive"`
	PaymentMethod string                  `json:"payment_method" binding:"required"`
}
