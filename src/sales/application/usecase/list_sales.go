package usecase

import (
	"context"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/application/response"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/port"
)

// ListSalesUseCase lists the committed sales history, newest first.
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase creates a new instance.
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo}
}

// Execute returns all sales as listing rows.
func (uc *ListSalesUseCase) Execute(ctx context.Context) ([]*response.SaleListItem, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toListItems(sales), nil
}

func toListItems(sales []*entity.Sale) []*response.SaleListItem {
	items := make([]*response.SaleListItem, 0, len(sales))
	for _, s := range sales {
		items = append(items, &response.SaleListItem{
			ID:            s.ID,
			CustomerID:    s.CustomerID,
			TotalAmount:   s.TotalAmount,
			PaymentMethod: string(s.PaymentMethod),
			TotalItems:    s.TotalItems(),
			CreatedAt:     s.CreatedAt,
		})
	}
	return items
}
