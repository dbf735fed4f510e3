package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/port"
	sharedport "github.com/SankalpaUD/POS-Thushara-Stores/src/shared/domain/port"
	sharedsql "github.com/SankalpaUD/POS-Thushara-Stores/src/shared/infrastructure/persistence"
)

const productColumns = `id, barcode, name, description, price, stock, created_at, updated_at`

// ProductPostgresRepository implements ProductRepository using PostgreSQL.
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository creates a new repository instance.
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{db: db}
}

// List returns the full catalog ordered by name.
func (r *ProductPostgresRepository) List(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// FindByID returns one product or ErrProductNotFound.
func (r *ProductPostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// FindByBarcode returns one product or ErrProductNotFound. Barcodes are
// unique, so at most one row matches.
func (r *ProductPostgresRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	return r.findOne(ctx, query, barcode)
}

func (r *ProductPostgresRepository) findOne(ctx context.Context, query string, arg any) (*entity.Product, error) {
	p := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.Barcode, &p.Name, &p.Description,
		&p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProductNotFound
		}
		return nil, fmt.Errorf("error querying product: %w", err)
	}
	return p, nil
}

// Create inserts a product and fills in the generated id and timestamps.
func (r *ProductPostgresRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (barcode, name, description, price, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		product.Barcode,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrBarcodeTaken
		}
		return fmt.Errorf("error creating product: %w", err)
	}

	return nil
}

// Update applies a field diff. Only the fields present in the patch appear in
// the SET clause; values always travel as parameters.
func (r *ProductPostgresRepository) Update(ctx context.Context, id int64, patch entity.ProductPatch) (*entity.Product, error) {
	if patch.IsEmpty() {
		return nil, entity.ErrNoFieldsToUpdate
	}

	p := sharedsql.NewPatch()
	if patch.Barcode != nil {
		p.Set("barcode", *patch.Barcode)
	}
	if patch.Name != nil {
		p.Set("name", *patch.Name)
	}
	if patch.Description != nil {
		p.Set("description", *patch.Description)
	}
	if patch.Price != nil {
		p.Set("price", *patch.Price)
	}
	if patch.Stock != nil {
		p.Set("stock", *patch.Stock)
	}

	clause, args, next := p.SetClause()
	query := fmt.Sprintf(
		`UPDATE products SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+productColumns,
		clause, next,
	)
	args = append(args, id)

	updated := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&updated.ID, &updated.Barcode, &updated.Name, &updated.Description,
		&updated.Price, &updated.Stock, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrProductNotFound
		}
		if isUniqueViolation(err) {
			return nil, entity.ErrBarcodeTaken
		}
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	return updated, nil
}

// Delete removes a product. Products referenced by sale items keep their
// foreign key, so deletion fails for sold products; that error surfaces as a
// storage fault to the caller.
func (r *ProductPostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}
	if affected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// AdjustStock applies stock += delta on the caller's Executor so it can join
// the sale transaction. No lower bound on the result.
func (r *ProductPostgresRepository) AdjustStock(ctx context.Context, ex sharedport.Executor, productID int64, delta int64) error {
	res, err := ex.ExecContext(ctx,
		`UPDATE products SET stock = stock + $1, updated_at = NOW() WHERE id = $2`,
		delta, productID,
	)
	if err != nil {
		return fmt.Errorf("error adjusting stock for product %d: %w", productID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error adjusting stock for product %d: %w", productID, err)
	}
	if affected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

func scanProduct(rows *sql.Rows) (*entity.Product, error) {
	p := &entity.Product{}
	err := rows.Scan(
		&p.ID, &p.Barcode, &p.Name, &p.Description,
		&p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning product: %w", err)
	}
	return p, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
