package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a credit customer. Balance is the amount owed; it grows when a
// credit sale references the customer and shrinks on settlement. The credit
// limit is advisory: nothing in the sale path stops the balance from
// exceeding it.
type Customer struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewCustomer validates and builds an unpersisted customer. New customers
// start with a zero balance.
func NewCustomer(name, phone, email string, creditLimit decimal.Decimal) (*Customer, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if creditLimit.LessThan(decimal.Zero) {
		return nil, ErrInvalidCreditLimit
	}

	return &Customer{
		Name:        name,
		Phone:       phone,
		Email:       email,
		CreditLimit: creditLimit,
		Balance:     decimal.Zero,
	}, nil
}

// CustomerPatch is an explicit field diff for a partial update. Balance is
// editable here for manual settlements and corrections, matching the admin
// surface of the register.
type CustomerPatch struct {
	Name        *string
	Phone       *string
	Email       *string
	CreditLimit *decimal.Decimal
	Balance     *decimal.Decimal
}

// IsEmpty reports whether the patch changes nothing.
func (p CustomerPatch) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Email == nil &&
		p.CreditLimit == nil && p.Balance == nil
}
