package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryResponse aggregates the whole sales history.
type SalesSummaryResponse struct {
	SalesCount   int             `json:"sales_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	AverageSale  decimal.Decimal `json:"average_sale"`
}

// DailyReportResponse aggregates the sales of a single day.
type DailyReportResponse struct {
	Date         string          `json:"date"`
	SalesCount   int             `json:"sales_count"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	FirstSaleAt  *time.Time      `json:"first_sale_at,omitempty"`
	LastSaleAt   *time.Time      `json:"last_sale_at,omitempty"`
}
