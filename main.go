package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apiConfig "github.com/SankalpaUD/POS-Thushara-Stores/src/api/config"
	catalogUseCase "github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/application/usecase"
	catalogport "github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/domain/port"
	catalogController "github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/infrastructure/controller"
	catalogPersistence "github.com/SankalpaUD/POS-Thushara-Stores/src/catalog/infrastructure/persistence"
	ledgerUseCase "github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/application/usecase"
	ledgerport "github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/domain/port"
	ledgerController "github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/infrastructure/controller"
	ledgerPersistence "github.com/SankalpaUD/POS-Thushara-Stores/src/ledger/infrastructure/persistence"
	salesUseCase "github.com/SankalpaUD/POS-Thushara-Stores/src/sales/application/usecase"
	salesController "github.com/SankalpaUD/POS-Thushara-Stores/src/sales/infrastructure/controller"
	salesPersistence "github.com/SankalpaUD/POS-Thushara-Stores/src/sales/infrastructure/persistence"
	sharedConfig "github.com/SankalpaUD/POS-Thushara-Stores/src/shared/infrastructure/config"
	sharedPersistence "github.com/SankalpaUD/POS-Thushara-Stores/src/shared/infrastructure/persistence"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("Thushara Stores POS Service - starting...")

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if os.Getenv("PROMETHEUS_ENABLED") == "true" {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	dbHost := sharedConfig.GetEnv("DB_HOST", "localhost")
	dbPort := sharedConfig.GetEnv("DB_PORT", "5432")
	dbUser := sharedConfig.GetEnv("DB_USER", "postgres")
	dbPassword := sharedConfig.GetEnv("DB_PASSWORD", "postgres")
	dbName := sharedConfig.GetEnv("DB_NAME", "pos_db")

	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Connecting to %s", dbName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("Error opening database connection: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Error verifying database connection: %v", err)
	}
	log.Printf("Connection to %s established", dbName)

	if err := sharedPersistence.EnsureSchema(db); err != nil {
		log.Fatalf("Error ensuring database schema: %v", err)
	}
	if sharedConfig.GetEnv("SEED_DEMO_DATA", "false") == "true" {
		if err := sharedPersistence.SeedDemoData(db); err != nil {
			log.Printf("Warning: could not seed demo data: %v", err)
		}
	}

	v1 := router.Group("/api/v1")

	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = "1.0.0"
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	productRepo := catalogPersistence.NewProductPostgresRepository(db)
	customerRepo := ledgerPersistence.NewCustomerPostgresRepository(db)

	setupCatalogModule(v1, productRepo)
	setupLedgerModule(v1, customerRepo)
	setupSalesModule(v1, db, productRepo, customerRepo)

	port := sharedConfig.GetEnv("PORT", "8080")
	log.Printf("POS service listening on http://localhost:%s", port)
	log.Printf("Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupCatalogModule wires the product admin endpoints.
func setupCatalogModule(router *gin.RouterGroup, productRepo catalogport.ProductRepository) {
	log.Println("Configuring Catalog module...")

	listProductsUC := catalogUseCase.NewListProductsUseCase(productRepo)
	getProductUC := catalogUseCase.NewGetProductUseCase(productRepo)
	createProductUC := catalogUseCase.NewCreateProductUseCase(productRepo)
	updateProductUC := catalogUseCase.NewUpdateProductUseCase(productRepo)
	deleteProductUC := catalogUseCase.NewDeleteProductUseCase(productRepo)

	productCtrl := catalogController.NewProductController(listProductsUC, getProductUC, createProductUC, updateProductUC, deleteProductUC)
	productCtrl.RegisterRoutes(router)

	log.Println("Catalog module configured")
}

// setupLedgerModule wires the customer admin endpoints.
func setupLedgerModule(router *gin.RouterGroup, customerRepo ledgerport.CustomerRepository) {
	log.Println("Configuring Ledger module...")

	listCustomersUC := ledgerUseCase.NewListCustomersUseCase(customerRepo)
	getCustomerUC := ledgerUseCase.NewGetCustomerUseCase(customerRepo)
	createCustomerUC := ledgerUseCase.NewCreateCustomerUseCase(customerRepo)
	updateCustomerUC := ledgerUseCase.NewUpdateCustomerUseCase(customerRepo)

	customerCtrl := ledgerController.NewCustomerController(listCustomersUC, getCustomerUC, createCustomerUC, updateCustomerUC)
	customerCtrl.RegisterRoutes(router)

	log.Println("Ledger module configured")
}

// setupSalesModule wires the sale engine, history and report endpoints. The
// catalog and ledger repositories double as the engine's transactional
// collaborators.
func setupSalesModule(router *gin.RouterGroup, db *sql.DB, productRepo catalogport.ProductRepository, customerRepo ledgerport.CustomerRepository) {
	log.Println("Configuring Sales module...")

	saleRepo := salesPersistence.NewSalePostgresRepository(db)

	recordSaleUC := salesUseCase.NewRecordSaleUseCase(db, saleRepo, productRepo, customerRepo)
	listSalesUC := salesUseCase.NewListSalesUseCase(saleRepo)
	listSaleItemsUC := salesUseCase.NewListSaleItemsUseCase(saleRepo)
	summaryUC := salesUseCase.NewSalesSummaryUseCase(saleRepo)
	dailyReportUC := salesUseCase.NewDailyReportUseCase(db)

	saleCtrl := salesController.NewSaleController(recordSaleUC, listSalesUC, listSaleItemsUC)
	reportCtrl := salesController.NewReportController(summaryUC, dailyReportUC)

	saleCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)

	log.Println("Sales module configured")
}
