package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer("Nimal Perera", "0771234567", "nimal@example.com", decimal.RequireFromString("5000.00"))
	require.NoError(t, err)
	assert.True(t, c.Balance.IsZero(), "new customers start with nothing owed")
	assert.Equal(t, "5000.00", c.CreditLimit.String())

	_, err = NewCustomer("", "", "", decimal.Zero)
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewCustomer("Nimal Perera", "", "", decimal.RequireFromString("-100"))
	assert.ErrorIs(t, err, ErrInvalidCreditLimit)
}

func TestCustomerPatch_IsEmpty(t *testing.T) {
	assert.True(t, CustomerPatch{}.IsEmpty())

	balance := decimal.Zero
	assert.False(t, CustomerPatch{Balance: &balance}.IsEmpty())
}
