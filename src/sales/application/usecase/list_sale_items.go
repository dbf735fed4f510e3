package usecase

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/port"
)

// ListSaleItemsUseCase returns the line items of one committed sale.
type ListSaleItemsUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSaleItemsUseCase creates a new instance.
func NewListSaleItemsUseCase(saleRepo port.SaleRepository) *ListSaleItemsUseCase {
	return &ListSaleItemsUseCase{saleRepo: saleRepo}
}

// Execute lists the items of the given sale. An unknown sale id yields an
// empty list.
func (uc *ListSaleItemsUseCase) Execute(ctx context.Context, saleID int64) ([]entity.SaleItem, error) {
	return uc.saleRepo.ListItems(ctx, saleID)
}
