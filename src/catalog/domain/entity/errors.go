package entity

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrBarcodeRequired  = errors.New("barcode is required")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidPrice     = errors.New("price must be greater than or equal to 0")
	ErrBarcodeTaken     = errors.New("barcode already exists")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
