package usecase

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/port"
)

// GetCustomerUseCase looks up a single customer.
type GetCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewGetCustomerUseCase creates a new instance.
func NewGetCustomerUseCase(customerRepo port.CustomerRepository) *GetCustomerUseCase {
	return &GetCustomerUseCase{customerRepo: customerRepo}
}

// Execute returns the customer with the given id.
func (uc *GetCustomerUseCase) Execute(ctx context.Context, id int64) (*entity.Customer, error) {
	return uc.customerRepo.FindByID(ctx, id)
}
