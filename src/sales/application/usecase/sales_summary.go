package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/application/response"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/port"
)

// SalesSummaryUseCase computes count, revenue and average over the full sales
// history. The result set fits in memory at this scale, so aggregation
// happens here instead of in SQL.
type SalesSummaryUseCase struct {
	saleRepo port.SaleRepository
}

// NewSalesSummaryUseCase creates a new instance.
func NewSalesSummaryUseCase(saleRepo port.SaleRepository) *SalesSummaryUseCase {
	return &SalesSummaryUseCase{saleRepo: saleRepo}
}

// Execute aggregates the whole history in decimal arithmetic.
func (uc *SalesSummaryUseCase) Execute(ctx context.Context) (*response.SalesSummaryResponse, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, s := range sales {
		revenue = revenue.Add(s.TotalAmount)
	}

	average := decimal.Zero
	if len(sales) > 0 {
		average = revenue.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
	}

	return &response.SalesSummaryResponse{
		SalesCount:   len(sales),
		TotalRevenue: revenue,
		AverageSale:  average,
	}, nil
}
