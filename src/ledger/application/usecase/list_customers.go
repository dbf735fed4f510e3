package usecase

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/port"
)

// ListCustomersUseCase lists the customer ledger.
type ListCustomersUseCase struct {
	customerRepo port.CustomerRepository
}

// NewListCustomersUseCase creates a new instance.
func NewListCustomersUseCase(customerRepo port.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo}
}

// Execute returns all customers ordered by name.
func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]*entity.Customer, error) {
	return uc.customerRepo.List(ctx)
}
