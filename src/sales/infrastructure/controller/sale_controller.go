package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogentity "github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/entity"
	ledgerentity "github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/entity"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/application/request"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/application/usecase"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/sales/domain/entity"
)

// SaleController handles the POS sale endpoints.
type SaleController struct {
	recordSaleUC    *usecase.RecordSaleUseCase
	listSalesUC     *usecase.ListSalesUseCase
	listSaleItemsUC *usecase.ListSaleItemsUseCase
}

// NewSaleController creates a new controller instance.
func NewSaleController(
	recordSaleUC *usecase.RecordSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	listSaleItemsUC *usecase.ListSaleItemsUseCase,
) *SaleController {
	return &SaleController{
		recordSaleUC:    recordSaleUC,
		listSalesUC:     listSalesUC,
		listSaleItemsUC: listSaleItemsUC,
	}
}

// RegisterRoutes registers the controller routes.
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	pos := router.Group("/pos")
	{
		pos.POST("/sale", c.RecordSale)
		pos.GET("/sales", c.ListSales)
		pos.GET("/sales/:sale_id/items", c.ListSaleItems)
	}

	log.Println("Sales routes available:")
	log.Println("  POST   /api/v1/pos/sale")
	log.Println("  GET    /api/v1/pos/sales")
	log.Println("  GET    /api/v1/pos/sales/:sale_id/items")
}

// RecordSale handles POST /pos/sale. The whole request commits or nothing
// does; on error no record is left behind.
func (c *SaleController) RecordSale(ctx *gin.Context) {
	var req request.RecordSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := c.recordSaleUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("Error recording sale: %v", err)

		switch {
		case errors.Is(err, entity.ErrEmptyCart),
			errors.Is(err, entity.ErrInvalidQuantity),
			errors.Is(err, entity.ErrInvalidPrice),
			errors.Is(err, entity.ErrInvalidPaymentMethod):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, catalogentity.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, ledgerentity.ErrCustomerNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording sale", "details": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ListSales handles GET /pos/sales.
func (c *SaleController) ListSales(ctx *gin.Context) {
	items, err := c.listSalesUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// ListSaleItems handles GET /pos/sales/:sale_id/items.
func (c *SaleController) ListSaleItems(ctx *gin.Context) {
	saleID, err := strconv.ParseInt(ctx.Param("sale_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale_id"})
		return
	}

	items, err := c.listSaleItemsUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		log.Printf("Error listing sale items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}
