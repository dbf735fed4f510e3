package port

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/entity"
	sharedport "github.com/SankalpaUD/POS-Thushara-Stores/src/shared/domain/port"
)

// SaleRepository persists sales and their items. The insert methods take an
// Executor so the transaction engine can run them on its own *sql.Tx; they
// never open or commit a transaction themselves. Sales are append-only:
// no update, no delete.
type SaleRepository interface {
	// InsertSale inserts the sale row and fills in the database-assigned
	// ID and CreatedAt.
	InsertSale(ctx context.Context, ex sharedport.Executor, sale *entity.Sale) error

	// InsertItem inserts one sale item row and fills in its ID.
	InsertItem(ctx context.Context, ex sharedport.Executor, item *entity.SaleItem) error

	// List returns all sales newest first, with their items loaded.
	List(ctx context.Context) ([]*entity.Sale, error)

	// ListItems returns the items of one sale. An unknown sale id yields
	// an empty list, not an error.
	ListItems(ctx context.Context, saleID int64) ([]entity.SaleItem, error)
}
