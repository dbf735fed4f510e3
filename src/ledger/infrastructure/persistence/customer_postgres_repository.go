package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/port"
	sharedport "github.com/SankalpaUD/POS-Thushara-Stores/src/shared/domain/port"
	sharedsql "github.com/SankalpaUD/POS-Thushara-Stores/src/shared/infrastructure/persistence"
)

const customerColumns = `id, name, phone, email, credit_limit, balance, created_at, updated_at`

// CustomerPostgresRepository implements CustomerRepository using PostgreSQL.
type CustomerPostgresRepository struct {
	db *sql.DB
}

// NewCustomerPostgresRepository creates a new repository instance.
func NewCustomerPostgresRepository(db *sql.DB) port.CustomerRepository {
	return &CustomerPostgresRepository{db: db}
}

// List returns all customers ordered by name.
func (r *CustomerPostgresRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying customers: %w", err)
	}
	defer rows.Close()

	var customers []*entity.Customer
	for rows.Next() {
		c := &entity.Customer{}
		err := rows.Scan(
			&c.ID, &c.Name, &c.Phone, &c.Email,
			&c.CreditLimit, &c.Balance, &c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}

// FindByID returns one customer or ErrCustomerNotFound.
func (r *CustomerPostgresRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	c := &entity.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email,
		&c.CreditLimit, &c.Balance, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("error querying customer: %w", err)
	}

	return c, nil
}

// Create inserts a customer with a zero starting balance.
func (r *CustomerPostgresRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (name, phone, email, credit_limit, balance)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING id, balance, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.CreditLimit,
	).Scan(&customer.ID, &customer.Balance, &customer.CreatedAt, &customer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating customer: %w", err)
	}

	return nil
}

// Update applies a field diff, same mechanics as the product repository.
func (r *CustomerPostgresRepository) Update(ctx context.Context, id int64, patch entity.CustomerPatch) (*entity.Customer, error) {
	if patch.IsEmpty() {
		return nil, entity.ErrNoFieldsToUpdate
	}

	p := sharedsql.NewPatch()
	if patch.Name != nil {
		p.Set("name", *patch.Name)
	}
	if patch.Phone != nil {
		p.Set("phone", *patch.Phone)
	}
	if patch.Email != nil {
		p.Set("email", *patch.Email)
	}
	if patch.CreditLimit != nil {
		p.Set("credit_limit", *patch.CreditLimit)
	}
	if patch.Balance != nil {
		p.Set("balance", *patch.Balance)
	}

	clause, args, next := p.SetClause()
	query := fmt.Sprintf(
		`UPDATE customers SET %s, updated_at = NOW() WHERE id = $%d RETURNING `+customerColumns,
		clause, next,
	)
	args = append(args, id)

	updated := &entity.Customer{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&updated.ID, &updated.Name, &updated.Phone, &updated.Email,
		&updated.CreditLimit, &updated.Balance, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("error updating customer: %w", err)
	}

	return updated, nil
}

// AdjustBalance applies balance += delta on the caller's Executor so it can
// join the sale transaction.
func (r *CustomerPostgresRepository) AdjustBalance(ctx context.Context, ex sharedport.Executor, customerID int64, delta decimal.Decimal) error {
	res, err := ex.ExecContext(ctx,
		`UPDATE customers SET balance = balance + $1, updated_at = NOW() WHERE id = $2`,
		delta, customerID,
	)
	if err != nil {
		return fmt.Errorf("error adjusting balance for customer %d: %w", customerID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error adjusting balance for customer %d: %w", customerID, err)
	}
	if affected == 0 {
		return entity.ErrCustomerNotFound
	}

	return nil
}
