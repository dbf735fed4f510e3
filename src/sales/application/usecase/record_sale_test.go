package usecase

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"

	catalogentity "github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/entity"
	catalogpersistence "github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/infrastructure/persistence"
	ledgerentity "github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/entity"
	ledgerpersistence "github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/infrastructure/persistence"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/application/request"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/entity"
	salespersistence "github.com/SankalpaUD/POS-Thushara-Stores/src/sales/infrastructure/persistence"
)

const (
	insertSaleSQL    = `INSERT INTO sales (customer_id, total_amount, payment_method) VALUES ($1, $2, $3) RETURNING id, created_at`
	insertItemSQL    = `INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, subtotal) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	adjustStockSQL   = `UPDATE products SET stock = stock + $1, updated_at = NOW() WHERE id = $2`
	adjustBalanceSQL = `UPDATE customers SET balance = balance + $1, updated_at = NOW() WHERE id = $2`
)

// newEngine wires the engine to real repositories over one mocked connection,
// so the tests exercise the actual SQL of the transaction.
func newEngine(t *testing.T) (*RecordSaleUseCase, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}

	saleRepo := salespersistence.NewSalePostgresRepository(db)
	catalogRepo := catalogpersistence.NewProductPostgresRepository(db)
	ledgerRepo := ledgerpersistence.NewCustomerPostgresRepository(db)

	return NewRecordSaleUseCase(db, saleRepo, catalogRepo, ledgerRepo), mock, db
}

func saleItems(pairs ...request.RecordSaleItemRequest) []request.RecordSaleItemRequest {
	return pairs
}

func TestRecordSale_CashSuccess(t *testing.T) {
	uc, mock, db := newEngine(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertSaleSQL)).
		WithArgs(nil, "1880.00", "cash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(10), time.Now()))

	mock.ExpectQuery(regexp.QuoteMeta(insertItemSQL)).
		WithArgs(int64(10), int64(1), 2, "850.00", "1700.00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(100)))
	mock.ExpectExec(regexp.QuoteMeta(adjustStockSQL)).
		WithArgs(int64(-2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery(regexp.QuoteMeta(insertItemSQL)).
		WithArgs(int64(10), int64(2), 1, "180.00", "180.00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(101)))
	mock.ExpectExec(regexp.QuoteMeta(adjustStockSQL)).
		WithArgs(int64(-1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	resp, err := uc.Execute(context.Background(), &request.RecordSaleRequest{
		Items: saleItems(
			request.RecordSaleItemRequest{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("850.00")},
			request.RecordSaleItemRequest{ProductID: 2, Quantity: 1, UnitPrice: decimal.RequireFromString("180.00")},
		),
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if resp.SaleID != 10 || resp.TotalItems != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.TotalAmount.String() != "1880.00" {
		t.Fatalf("unexpected total: %s", resp.TotalAmount)
	}
	if resp.PaymentMethodName != "Cash" {
		t.Fatalf("unexpected payment method name: %s", resp.PaymentMethodName)
	}
	if resp.ReceiptNumber == "" {
		t.Fatalf("expected a receipt number")
	}
	if resp.Items[0].ItemID != 100 || resp.Items[1].ItemID != 101 {
		t.Fatalf("unexpected item ids: %+v", resp.Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordSale_EmptyCart_NoDatabaseCalls(t *testing.T) {
	uc, mock, db := newEngine(t)
	defer db.Close()

	_, err := uc.Execute(context.Background(), &request.RecordSaleRequest{
		PaymentMethod: "cash",
	})
	if !errors.Is(err, entity.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expected no database activity: %v", err)
	}
}

func TestRecordSale_InvalidPaymentMethod(t *testing.T) {
	uc, mock, db := newEngine(t)
	defer db.Close()

	_, err := uc.Execute(context.Background(), &request.RecordSaleRequest{
		Items: saleItems(
			request.RecordSaleItemRequest{ProductID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		),
		PaymentMethod: "cheque",
	})
	if !errors.Is(err, entity.ErrInvalidPaymentMethod) {
		t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expected no database activity: %v", err)
	}
}

func TestRecordSale_ItemFailureRollsBackEverything(t *testing.T) {
	uc, mock, db := newEngine(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertSaleSQL)).
		WithArgs(nil, "30.00", "cash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), time.Now()))

	// first item lands
	mock.ExpectQuery(regexp.QuoteMeta(insertItemSQL)).
		WithArgs(int64(11), int64(1), 1, "10.00", "10.00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(200)))
	mock.ExpectExec(regexp.QuoteMeta(adjustStockSQL)).
		WithArgs(int64(-1), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// second item insert blows up -> the whole sale must roll back
	mock.ExpectQuery(regexp.QuoteMeta(insertItemSQL)).
		WithArgs(int64(11), int64(2), 2, "10.00", "20.00").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := uc.Execute(context.Background(), &request.RecordSaleRequest{
		Items: saleItems(
			request.RecordSaleItemRequest{ProductID: 1, Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
			request.RecordSaleItemRequest{ProductID: 2, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		),
		PaymentMethod: "cash",
	})
	if err == nil {
		t.Fatalf("expected failure")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordSale_UnknownProductRollsBack(t *testing.T) {
	uc, mock, db := newEngine(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertSaleSQL)).
		WithArgs(nil, "10.00", "card").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(12), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(insertItemSQL)).
		WithArgs(int64(12), int64(99), 1, "10.00", "10.00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(300)))

	// no products row matches -> not found, transaction rolls back
	mock.ExpectExec(regexp.QuoteMeta(adjustStockSQL)).
		WithArgs(int64(-1), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := uc.Execute(context.Background(), &request.RecordSaleRequest{
		Items: saleItems(
			request.RecordSaleItemRequest{ProductID: 99, Quantity: 1, UnitPrice: decimal.RequireFromString("10.00")},
		),
		PaymentMethod: "card",
	})
	if !errors.Is(err, catalogentity.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordSale_CreditSaleBumpsCustomerBalance(t *testing.T) {
	uc, mock, db := newEngine(t)
	defer db.Close()

	customerID := int64(7)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertSaleSQL)).
		WithArgs(customerID, "400.00", "credit").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(13), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(insertItemSQL)).
		WithArgs(int64(13), int64(3), 4, "100.00", "400.00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(400)))
	mock.ExpectExec(regexp.QuoteMeta(adjustStockSQL)).
		WithArgs(int64(-4), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// owed balance grows by the sale total inside the same transaction
	mock.ExpectExec(regexp.QuoteMeta(adjustBalanceSQL)).
		WithArgs("400.00", customerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := uc.Execute(context.Background(), &request.RecordSaleRequest{
		CustomerID: &customerID,
		Items: saleItems(
			request.RecordSaleItemRequest{ProductID: 3, Quantity: 4, UnitPrice: decimal.RequireFromString("100.00")},
		),
		PaymentMethod: "credit",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if resp.CustomerID == nil || *resp.CustomerID != customerID {
		t.Fatalf("unexpected customer id: %+v", resp.CustomerID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordSale_CreditSaleOverLimitStillCommits(t *testing.T) {
	uc, mock, db := newEngine(t)
	defer db.Close()

	// the engine never reads the credit limit; a sale that pushes the balance
	// past it commits like any other
	customerID := int64(7)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertSaleSQL)).
		WithArgs(customerID, "700.00", "credit").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(16), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(insertItemSQL)).
		WithArgs(int64(16), int64(4), 7, "100.00", "700.00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(700)))
	mock.ExpectExec(regexp.QuoteMeta(adjustStockSQL)).
		WithArgs(int64(-7), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(adjustBalanceSQL)).
		WithArgs("700.00", customerID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := uc.Execute(context.Background(), &request.RecordSaleRequest{
		CustomerID: &customerID,
		Items: saleItems(
			request.RecordSaleItemRequest{ProductID: 4, Quantity: 7, UnitPrice: decimal.RequireFromString("100.00")},
		),
		PaymentMethod: "credit",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordSale_CreditWalkInCommitsWithoutLedger(t *testing.T) {
	uc, mock, db := newEngine(t)
	defer db.Close()

	// credit sale with no customer reference: commits, no balance mutation
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertSaleSQL)).
		WithArgs(nil, "50.00", "credit").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(14), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(insertItemSQL)).
		WithArgs(int64(14), int64(5), 1, "50.00", "50.00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(500)))
	mock.ExpectExec(regexp.QuoteMeta(adjustStockSQL)).
		WithArgs(int64(-1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := uc.Execute(context.Background(), &request.RecordSaleRequest{
		Items: saleItems(
			request.RecordSaleItemRequest{ProductID: 5, Quantity: 1, UnitPrice: decimal.RequireFromString("50.00")},
		),
		PaymentMethod: "credit",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordSale_UnknownCustomerRollsBack(t *testing.T) {
	uc, mock, db := newEngine(t)
	defer db.Close()

	customerID := int64(404)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(insertSaleSQL)).
		WithArgs(customerID, "50.00", "credit").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(15), time.Now()))
	mock.ExpectQuery(regexp.QuoteMeta(insertItemSQL)).
		WithArgs(int64(15), int64(5), 1, "50.00", "50.00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(600)))
	mock.ExpectExec(regexp.QuoteMeta(adjustStockSQL)).
		WithArgs(int64(-1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(adjustBalanceSQL)).
		WithArgs("50.00", customerID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := uc.Execute(context.Background(), &request.RecordSaleRequest{
		CustomerID: &customerID,
		Items: saleItems(
			request.RecordSaleItemRequest{ProductID: 5, Quantity: 1, UnitPrice: decimal.RequireFromString("50.00")},
		),
		PaymentMethod: "credit",
	})
	if !errors.Is(err, ledgerentity.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
