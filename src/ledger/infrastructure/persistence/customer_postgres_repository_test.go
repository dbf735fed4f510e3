package persistence

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/entity"
)

func newCustomerRepo(t *testing.T) (*CustomerPostgresRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	return &CustomerPostgresRepository{db: db}, mock, func() { db.Close() }
}

func TestCustomerCreate_StartsWithZeroBalance(t *testing.T) {
	repo, mock, closeDB := newCustomerRepo(t)
	defer closeDB()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO customers (name, phone, email, credit_limit, balance) VALUES ($1, $2, $3, $4, 0) RETURNING id, balance, created_at, updated_at`)).
		WithArgs("Nimal Perera", "0771234567", "", "5000.00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "balance", "created_at", "updated_at"}).
			AddRow(int64(7), "0", now, now))

	customer, err := entity.NewCustomer("Nimal Perera", "0771234567", "", decimal.RequireFromString("5000.00"))
	if err != nil {
		t.Fatalf("NewCustomer failed: %v", err)
	}

	if err := repo.Create(context.Background(), customer); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if customer.ID != 7 || !customer.Balance.IsZero() {
		t.Fatalf("unexpected customer: %+v", customer)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerUpdate_PartialFieldsOnly(t *testing.T) {
	repo, mock, closeDB := newCustomerRepo(t)
	defer closeDB()

	now := time.Now()
	newPhone := "0777654321"
	newLimit := decimal.RequireFromString("10000.00")

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE customers SET phone = $1, credit_limit = $2, updated_at = NOW() WHERE id = $3 RETURNING `+customerColumns)).
		WithArgs("0777654321", "10000.00", int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email", "credit_limit", "balance", "created_at", "updated_at"}).
			AddRow(int64(7), "Nimal Perera", "0777654321", "", "10000.00", "1880.00", now, now))

	updated, err := repo.Update(context.Background(), 7, entity.CustomerPatch{
		Phone:       &newPhone,
		CreditLimit: &newLimit,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Phone != "0777654321" || updated.CreditLimit.String() != "10000.00" {
		t.Fatalf("unexpected customer: %+v", updated)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCustomerFindByID_NotFound(t *testing.T) {
	repo, mock, closeDB := newCustomerRepo(t)
	defer closeDB()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + customerColumns + ` FROM customers WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), 404)
	if !errors.Is(err, entity.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdjustBalance(t *testing.T) {
	repo, mock, closeDB := newCustomerRepo(t)
	defer closeDB()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE customers SET balance = balance + $1, updated_at = NOW() WHERE id = $2`)).
		WithArgs("1880.00", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AdjustBalance(context.Background(), repo.db, 7, decimal.RequireFromString("1880.00")); err != nil {
		t.Fatalf("AdjustBalance failed: %v", err)
	}

	// settling debt uses a negative delta against the same statement
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE customers SET balance = balance + $1, updated_at = NOW() WHERE id = $2`)).
		WithArgs("-500.00", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AdjustBalance(context.Background(), repo.db, 7, decimal.RequireFromString("-500.00")); err != nil {
		t.Fatalf("AdjustBalance failed: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE customers SET balance = balance + $1, updated_at = NOW() WHERE id = $2`)).
		WithArgs("10.00", int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.AdjustBalance(context.Background(), repo.db, 404, decimal.RequireFromString("10.00")); !errors.Is(err, entity.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
