package usecase

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/application/request"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/port"
)

// UpdateProductUseCase applies a partial update to a product.
type UpdateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewUpdateProductUseCase creates a new instance.
func NewUpdateProductUseCase(productRepo port.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo}
}

// Execute maps the request onto a field diff and applies it. Set fields are
// validated the same way creation validates them.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, id int64, req *request.UpdateProductRequest) (*entity.Product, error) {
	if req.Barcode != nil && *req.Barcode == "" {
		return nil, entity.ErrBarcodeRequired
	}
	if req.Name != nil && *req.Name == "" {
		return nil, entity.ErrNameRequired
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, entity.ErrInvalidPrice
	}

	patch := entity.ProductPatch{
		Barcode:     req.Barcode,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	return uc.productRepo.Update(ctx, id, patch)
}
