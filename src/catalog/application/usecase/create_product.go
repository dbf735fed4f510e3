package usecase

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/application/request"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/port"
)

// CreateProductUseCase registers a new catalog product.
type CreateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewCreateProductUseCase creates a new instance.
func NewCreateProductUseCase(productRepo port.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo}
}

// Execute validates and persists the product.
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	product, err := entity.NewProduct(req.Barcode, req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}
