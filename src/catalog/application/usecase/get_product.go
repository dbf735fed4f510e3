package usecase

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/port"
)

// GetProductUseCase looks up a single product by id or barcode. Barcode
// lookup is the hot path at the register.
type GetProductUseCase struct {
	productRepo port.ProductRepository
}

// NewGetProductUseCase creates a new instance.
func NewGetProductUseCase(productRepo port.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

// ByID returns the product with the given id.
func (uc *GetProductUseCase) ByID(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.productRepo.FindByID(ctx, id)
}

// ByBarcode returns the product with the given barcode.
func (uc *GetProductUseCase) ByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	return uc.productRepo.FindByBarcode(ctx, barcode)
}
