package port

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/entity"
	sharedport "github.com/SankalpaUD/POS-Thushara-Stores/src/shared/domain/port"
)

// ProductRepository persists catalog products. AdjustStock takes an Executor
// so the sale engine can run it inside its transaction; everything else uses
// the repository's own handle.
type ProductRepository interface {
	List(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error)
	Delete(ctx context.Context, id int64) error

	// AdjustStock applies stock += delta. Returns ErrProductNotFound when
	// no row matches. The result may go negative.
	AdjustStock(ctx context.Context, ex sharedport.Executor, productID int64, delta int64) error
}
