package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/application/response"
)

// DailyReportUseCase aggregates one day of sales directly in SQL.
type DailyReportUseCase struct {
	db *sql.DB
}

// NewDailyReportUseCase creates a new instance.
func NewDailyReportUseCase(db *sql.DB) *DailyReportUseCase {
	return &DailyReportUseCase{db: db}
}

// Execute generates the report for a YYYY-MM-DD date. The query uses a
// half-open [from, to) range on created_at rather than DATE(created_at) so
// the index on created_at stays usable.
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*response.DailyReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	query := `
		SELECT
			COUNT(*) as sales_count,
			COALESCE(SUM(total_amount), 0) as total_revenue,
			MIN(created_at) as first_sale,
			MAX(created_at) as last_sale
		FROM sales
		WHERE created_at >= $1
			AND created_at < $2
	`

	var salesCount int
	var totalRevenue decimal.Decimal
	var firstSale, lastSale sql.NullTime

	err = uc.db.QueryRowContext(ctx, query, from, to).Scan(
		&salesCount,
		&totalRevenue,
		&firstSale,
		&lastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}

	resp := &response.DailyReportResponse{
		Date:         date,
		SalesCount:   salesCount,
		TotalRevenue: totalRevenue,
	}

	if firstSale.Valid {
		resp.FirstSaleAt = &firstSale.Time
	}
	if lastSale.Valid {
		resp.LastSaleAt = &lastSale.Time
	}

	return resp, nil
}
