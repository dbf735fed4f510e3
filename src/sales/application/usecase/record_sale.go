package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/application/request"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/application/response"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/port"
)

// RecordSaleUseCase is the sale transaction engine. It validates a proposed
// sale, computes the total in decimal arithmetic, and commits the sale row,
// its items, the stock decrements and the optional credit-balance increase as
// one database transaction. Either everything persists or nothing does.
//
// The storage handle is injected, not read from a package-level singleton, so
// tests can run the engine against an isolated database.
type RecordSaleUseCase struct {
	db       *sql.DB
	saleRepo port.SaleRepository
	catalog  port.CatalogStore
	ledger   port.LedgerStore
}

// NewRecordSaleUseCase creates the transaction engine.
func NewRecordSaleUseCase(
	db *sql.DB,
	saleRepo port.SaleRepository,
	catalog port.CatalogStore,
	ledger port.LedgerStore,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		db:       db,
		saleRepo: saleRepo,
		catalog:  catalog,
		ledger:   ledger,
	}
}

// Execute records one sale.
//
// Flow:
//  1. Validate the request and build the sale aggregate (total = exact
//     decimal sum of quantity x unit_price). An empty cart is rejected here,
//     before any mutation.
//  2. Begin a transaction on the injected handle.
//  3. Insert the sale, then per item insert the sale_item and decrement the
//     product's stock through the catalog port. The resulting stock may go
//     negative; the engine deliberately does not check.
//  4. For a credit sale with a customer reference, increase the customer's
//     owed balance by the total through the ledger port. A credit sale
//     without a customer commits with no ledger mutation. No credit-limit
//     check happens inside the engine.
//  5. Commit. Any failure in 3-4 returns with the deferred rollback undoing
//     every change of this request.
func (uc *RecordSaleUseCase) Execute(ctx context.Context, req *request.RecordSaleRequest) (*response.RecordSaleResponse, error) {
	method := entity.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		return nil, entity.ErrInvalidPaymentMethod
	}
	if len(req.Items) == 0 {
		return nil, entity.ErrEmptyCart
	}

	items := make([]entity.SaleItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := entity.NewSaleItem(itemReq.ProductID, itemReq.Quantity, itemReq.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	sale, err := entity.NewSale(req.CustomerID, items, method)
	if err != nil {
		return nil, err
	}

	tx, err := uc.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting sale transaction: %w", err)
	}
	// No-op after a successful commit; guarantees release on every other
	// exit path.
	defer tx.Rollback()

	if err := uc.saleRepo.InsertSale(ctx, tx, sale); err != nil {
		return nil, err
	}

	for i := range sale.Items {
		sale.Items[i].SaleID = sale.ID
		if err := uc.saleRepo.InsertItem(ctx, tx, &sale.Items[i]); err != nil {
			return nil, err
		}
		if err := uc.catalog.AdjustStock(ctx, tx, sale.Items[i].ProductID, -int64(sale.Items[i].Quantity)); err != nil {
			return nil, err
		}
	}

	if method == entity.PaymentCredit && sale.CustomerID != nil {
		if err := uc.ledger.AdjustBalance(ctx, tx, *sale.CustomerID, sale.TotalAmount); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing sale transaction: %w", err)
	}

	log.Printf("Sale %d recorded: %d items, total %s, method %s",
		sale.ID, sale.TotalItems(), sale.TotalAmount, method)

	return toRecordSaleResponse(sale), nil
}

func toRecordSaleResponse(sale *entity.Sale) *response.RecordSaleResponse {
	itemsResp := make([]response.SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		itemsResp = append(itemsResp, response.SaleItemResponse{
			ItemID:    item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	return &response.RecordSaleResponse{
		SaleID:            sale.ID,
		ReceiptNumber:     uuid.New().String(),
		CustomerID:        sale.CustomerID,
		Items:             itemsResp,
		TotalItems:        sale.TotalItems(),
		TotalAmount:       sale.TotalAmount,
		PaymentMethod:     string(sale.PaymentMethod),
		PaymentMethodName: sale.PaymentMethod.DisplayName(),
		CreatedAt:         sale.CreatedAt,
	}
}
