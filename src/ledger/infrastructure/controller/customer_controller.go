package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/application/request"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/application/usecase"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/entity"
)

// CustomerController handles the customer admin endpoints.
type CustomerController struct {
	listCustomersUC  *usecase.ListCustomersUseCase
	getCustomerUC    *usecase.GetCustomerUseCase
	createCustomerUC *usecase.CreateCustomerUseCase
	updateCustomerUC *usecase.UpdateCustomerUseCase
}

// NewCustomerController creates a new controller instance.
func NewCustomerController(
	listCustomersUC *usecase.ListCustomersUseCase,
	getCustomerUC *usecase.GetCustomerUseCase,
	createCustomerUC *usecase.CreateCustomerUseCase,
	updateCustomerUC *usecase.UpdateCustomerUseCase,
) *CustomerController {
	return &CustomerController{
		listCustomersUC:  listCustomersUC,
		getCustomerUC:    getCustomerUC,
		createCustomerUC: createCustomerUC,
		updateCustomerUC: updateCustomerUC,
	}
}

// RegisterRoutes registers the controller routes.
func (c *CustomerController) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.GET("", c.ListCustomers)
		customers.GET("/:id", c.GetCustomer)
		customers.POST("", c.CreateCustomer)
		customers.PUT("/:id", c.UpdateCustomer)
	}

	log.Println("Customer routes available:")
	log.Println("  GET    /api/v1/customers")
	log.Println("  GET    /api/v1/customers/:id")
	log.Println("  POST   /api/v1/customers")
	log.Println("  PUT    /api/v1/customers/:id")
}

// ListCustomers handles GET /customers.
func (c *CustomerController) ListCustomers(ctx *gin.Context) {
	customers, err := c.listCustomersUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       customers,
		"total_count": len(customers),
	})
}

// GetCustomer handles GET /customers/:id.
func (c *CustomerController) GetCustomer(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	customer, err := c.getCustomerUC.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

// CreateCustomer handles POST /customers.
func (c *CustomerController) CreateCustomer(ctx *gin.Context) {
	var req request.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	customer, err := c.createCustomerUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, customer)
}

// UpdateCustomer handles PUT /customers/:id.
func (c *CustomerController) UpdateCustomer(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer id"})
		return
	}

	var req request.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	customer, err := c.updateCustomerUC.Execute(ctx.Request.Context(), id, &req)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

func (c *CustomerController) renderError(ctx *gin.Context, err error) {
	log.Printf("Customer error: %v", err)

	switch {
	case errors.Is(err, entity.ErrCustomerNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	case errors.Is(err, entity.ErrNameRequired),
		errors.Is(err, entity.ErrInvalidCreditLimit),
		errors.Is(err, entity.ErrNoFieldsToUpdate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
