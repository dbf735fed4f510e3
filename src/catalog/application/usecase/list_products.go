package usecase

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/port"
)

// ListProductsUseCase lists the catalog.
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase creates a new instance.
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute returns all products ordered by name.
func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx)
}
