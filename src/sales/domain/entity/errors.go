package entity

import "errors"

var (
	ErrEmptyCart            = errors.New("sale must have at least one item")
	ErrInvalidQuantity      = errors.New("quantity must be greater than 0")
	ErrInvalidPrice         = errors.New("unit_price must be greater than or equal to 0")
	ErrInvalidPaymentMethod = errors.New("payment_method must be one of cash, credit, card")
)
