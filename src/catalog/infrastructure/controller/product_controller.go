package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/application/request"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/application/usecase"
	"github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/entity"
)

// ProductController handles the catalog admin endpoints.
type ProductController struct {
	listProductsUC  *usecase.ListProductsUseCase
	getProductUC    *usecase.GetProductUseCase
	createProductUC *usecase.CreateProductUseCase
	updateProductUC *usecase.UpdateProductUseCase
	deleteProductUC *usecase.DeleteProductUseCase
}

// NewProductController creates a new controller instance.
func NewProductController(
	listProductsUC *usecase.ListProductsUseCase,
	getProductUC *usecase.GetProductUseCase,
	createProductUC *usecase.CreateProductUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		listProductsUC:  listProductsUC,
		getProductUC:    getProductUC,
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		deleteProductUC: deleteProductUC,
	}
}

// RegisterRoutes registers the controller routes.
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/:id", c.GetProduct)
		products.GET("/barcode/:barcode", c.GetProductByBarcode)
		products.POST("", c.CreateProduct)
		products.PUT("/:id", c.UpdateProduct)
		products.DELETE("/:id", c.DeleteProduct)
	}

	log.Println("Product routes available:")
	log.Println("  GET    /api/v1/products")
	log.Println("  GET    /api/v1/products/:id")
	log.Println("  GET    /api/v1/products/barcode/:barcode")
	log.Println("  POST   /api/v1/products")
	log.Println("  PUT    /api/v1/products/:id")
	log.Println("  DELETE /api/v1/products/:id")
}

// ListProducts handles GET /products.
func (c *ProductController) ListProducts(ctx *gin.Context) {
	products, err := c.listProductsUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       products,
		"total_count": len(products),
	})
}

// GetProduct handles GET /products/:id.
func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := c.getProductUC.ByID(ctx.Request.Context(), id)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// GetProductByBarcode handles GET /products/barcode/:barcode.
func (c *ProductController) GetProductByBarcode(ctx *gin.Context) {
	barcode := ctx.Param("barcode")

	product, err := c.getProductUC.ByBarcode(ctx.Request.Context(), barcode)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /products.
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/:id.
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	var req request.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	product, err := c.updateProductUC.Execute(ctx.Request.Context(), id, &req)
	if err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/:id.
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := c.deleteProductUC.Execute(ctx.Request.Context(), id); err != nil {
		c.renderError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *ProductController) renderError(ctx *gin.Context, err error) {
	log.Printf("Product error: %v", err)

	switch {
	case errors.Is(err, entity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, entity.ErrBarcodeTaken):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Barcode already exists"})
	case errors.Is(err, entity.ErrBarcodeRequired),
		errors.Is(err, entity.ErrNameRequired),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrNoFieldsToUpdate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
