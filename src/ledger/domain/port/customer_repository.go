package port

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/entity"
	sharedport "github.com/SankalpaUD/POS-Thushara-Stores/src/shared/domain/port"
)

// CustomerRepository persists customers. AdjustBalance takes an Executor so
// the sale engine can run it inside its transaction.
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, id int64, patch entity.CustomerPatch) (*entity.Customer, error)

	// AdjustBalance applies balance += delta. Returns ErrCustomerNotFound
	// when no row matches. No credit-limit check happens here.
	AdjustBalance(ctx context.Context, ex sharedport.Executor, customerID int64, delta decimal.Decimal) error
}
