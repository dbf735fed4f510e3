package usecase

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/application/request"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/port"
)

// UpdateCustomerUseCase applies a partial update to a customer.
type UpdateCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewUpdateCustomerUseCase creates a new instance.
func NewUpdateCustomerUseCase(customerRepo port.CustomerRepository) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{customerRepo: customerRepo}
}

// Execute maps the request onto a field diff and applies it.
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, id int64, req *request.UpdateCustomerRequest) (*entity.Customer, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, entity.ErrNameRequired
	}
	if req.CreditLimit != nil && req.CreditLimit.IsNegative() {
		return nil, entity.ErrInvalidCreditLimit
	}

	patch := entity.CustomerPatch{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		CreditLimit: req.CreditLimit,
		Balance:     req.Balance,
	}

	return uc.customerRepo.Update(ctx, id, patch)
}
