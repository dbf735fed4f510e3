package entity

import "errors"

var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrNameRequired       = errors.New("name is required")
	ErrInvalidCreditLimit = errors.New("credit_limit must be greater than or equal to 0")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
)
