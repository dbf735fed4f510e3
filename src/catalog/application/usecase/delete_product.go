package usecase

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/port"
)

// DeleteProductUseCase removes a product from the catalog.
type DeleteProductUseCase struct {
	productRepo port.ProductRepository
}

// NewDeleteProductUseCase creates a new instance.
func NewDeleteProductUseCase(productRepo port.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo}
}

// Execute deletes the product with the given id.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, id int64) error {
	return uc.productRepo.Delete(ctx, id)
}
