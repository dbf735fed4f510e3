package port

import (
	"context"

	"github.com/shopspring/decimal"

	sharedport "github.com/SankalpaUD/POS-Thushara-Stores/src/shared/domain/port"
)

// CatalogStore is the inventory collaborator as the sale engine sees it.
// AdjustStock must run on the caller-supplied Executor so the stock decrement
// commits or rolls back together with the sale.
type CatalogStore interface {
	// AdjustStock applies stock += delta for a product. Returns the
	// catalog's not-found error when the product does not exist. The
	// resulting stock is allowed to go negative; the engine performs no
	// oversell check.
	AdjustStock(ctx context.Context, ex sharedport.Executor, productID int64, delta int64) error
}

// LedgerStore is the customer-credit collaborator as the sale engine sees it.
type LedgerStore interface {
	// AdjustBalance applies balance += delta for a customer on the
	// caller-supplied Executor. Returns the ledger's not-found error when
	// the customer does not exist. No credit-limit check happens here;
	// limit enforcement is the caller's concern.
	AdjustBalance(ctx context.Context, ex sharedport.Executor, customerID int64, delta decimal.Decimal) error
}
