package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemResponse is one item in a recorded sale response.
type SaleItemResponse struct {
	ItemID    int64           `json:"item_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// RecordSaleResponse is the receipt-ready DTO returned by POST /pos/sale.
type RecordSaleResponse struct {
	SaleID            int64              `json:"sale_id"`
	ReceiptNumber     string             `json:"receipt_number"`
	CustomerID        *int64             `json:"customer_id,omitempty"`
	Items             []SaleItemResponse `json:"items"`
	TotalItems        int                `json:"total_items"`
	TotalAmount       decimal.Decimal    `json:"total_amount"`
	PaymentMethod     string             `json:"payment_method"`
	PaymentMethodName string             `json:"payment_method_name"`
	CreatedAt         time.Time          `json:"created_at"`
}
