package request

import (
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest is the request body for POST /customers.
type CreateCustomerRequest struct {
	Name        string          `json:"name" binding:"required"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// UpdateCustomerRequest is the request body for PUT /customers/:id. Absent
// fields stay untouched. Balance is editable for manual settlements.
type UpdateCustomerRequest struct {
	Name        *string          `json:"name"`
	Phone       *string          `json:"phone"`
	Email       *string          `json:"email"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Balance     *decimal.Decimal `json:"balance"`
}
