package usecase

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/application/request"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/port"
)

// CreateCustomerUseCase registers a new credit customer.
type CreateCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewCreateCustomerUseCase creates a new instance.
func NewCreateCustomerUseCase(customerRepo port.CustomerRepository) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{customerRepo: customerRepo}
}

// Execute validates and persists the customer.
func (uc *CreateCustomerUseCase) Execute(ctx context.Context, req *request.CreateCustomerRequest) (*entity.Customer, error) {
	customer, err := entity.NewCustomer(req.Name, req.Phone, req.Email, req.CreditLimit)
	if err != nil {
		return nil, err
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}
