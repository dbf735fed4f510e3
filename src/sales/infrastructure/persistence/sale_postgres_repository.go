package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/port"
	sharedport "github.com/SankalpaUD/POS-Thushara-Stores/src/shared/domain/port"
)

// SalePostgresRepository implements SaleRepository against PostgreSQL.
// Inserts run on whatever Executor the caller hands in - in practice the
// transaction engine's *sql.Tx - so this repository never commits anything
// on its own. Reads use the pooled handle.
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository creates a new repository instance.
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{db: db}
}

// InsertSale inserts the sale row. The timestamp is server-assigned by the
// column default and read back together with the generated id.
func (r *SalePostgresRepository) InsertSale(ctx context.Context, ex sharedport.Executor, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (customer_id, total_amount, payment_method)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := ex.QueryRowContext(ctx, query,
		sale.CustomerID,
		sale.TotalAmount,
		string(sale.PaymentMethod),
	).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		return fmt.Errorf("error inserting sale: %w", err)
	}

	return nil
}

// InsertItem inserts one sale item with its captured unit price and subtotal.
func (r *SalePostgresRepository) InsertItem(ctx context.Context, ex sharedport.Executor, item *entity.SaleItem) error {
	query := `
		INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := ex.QueryRowContext(ctx, query,
		item.SaleID,
		item.ProductID,
		item.Quantity,
		item.UnitPrice,
		item.Subtotal,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("error inserting sale item for product %d: %w", item.ProductID, err)
	}

	return nil
}

// List returns all sales newest first with their items loaded. Items load one
// query per sale; fine at single-store scale.
func (r *SalePostgresRepository) List(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT id, customer_id, total_amount, payment_method, created_at
		FROM sales
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale

	for rows.Next() {
		sale := &entity.Sale{}
		var customerID sql.NullInt64
		var method string

		err := rows.Scan(&sale.ID, &customerID, &sale.TotalAmount, &method, &sale.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}

		if customerID.Valid {
			sale.CustomerID = &customerID.Int64
		}
		sale.PaymentMethod = entity.PaymentMethod(method)
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	for _, sale := range sales {
		items, err := r.ListItems(ctx, sale.ID)
		if err != nil {
			return nil, err
		}
		sale.Items = items
	}

	return sales, nil
}

// ListItems returns the items of one sale in insertion order.
func (r *SalePostgresRepository) ListItems(ctx context.Context, saleID int64) ([]entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("error querying sale items: %w", err)
	}
	defer rows.Close()

	items := []entity.SaleItem{}

	for rows.Next() {
		item := entity.SaleItem{}
		err := rows.Scan(
			&item.ID,
			&item.SaleID,
			&item.ProductID,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning sale item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale items: %w", err)
	}

	return items, nil
}
