package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fadhlyaj09/Najwa-Pennywise/internal/config"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/database"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/handlers"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/ledger"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/ledger/sheetstore"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/ledger/sqlstore"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/logger"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/middleware"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/report"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/services"
	"github.com/fadhlyaj09/Najwa-Pennywise/internal/validator"

	_ "github.com/fadhlyaj09/Najwa-Pennywise/internal/docs" // Import swagger docs
)

// @title           Pennywise API
// @version         1.0
// @description     Pennywise is a personal finance tracker for transactions, categories, informal debts, and AI-generated monthly reports.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

// newLedgerStore builds the storage backend named by configuration.
func newLedgerStore(ctx context.Context, cfg *config.Config) (ledger.Store, error) {
	switch cfg.LedgerBackend {
	case config.BackendSheets:
		store, err := sheetstore.New(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open spreadsheet backend: %w", err)
		}
		return store, nil

	case config.BackendPostgres:
		dbConfig, err := database.NewConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load database configuration: %w", err)
		}
		manager, err := database.NewManager(dbConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create database manager: %w", err)
		}
		if err := manager.RunMigrations(); err != nil {
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		return sqlstore.New(manager.DB()), nil

	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store, err := newLedgerStore(context.Background(), appConfig)
	if err != nil {
		return err
	}
	log.Infof("Using %s ledger backend", appConfig.LedgerBackend)

	// Initialize services
	userService := services.NewUserService(store)
	categoryService := services.NewCategoryService(store)
	debtService := services.NewDebtService(store, categoryService)
	transactionService := services.NewTransactionService(store, categoryService, debtService)
	summaryService := services.NewSummaryService(store)

	generator, err := report.NewGeminiGenerator(appConfig.GeminiAPIKey, appConfig.GeminiModel)
	if err != nil {
		return fmt.Errorf("failed to create report generator: %w", err)
	}
	reportService := services.NewReportService(store, summaryService, generator)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, categoryService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	debtHandler := handlers.NewDebtHandler(debtService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Register custom binding rules
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetUserTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Debt routes
	debts := protected.Group("/debts")
	debts.POST("", debtHandler.CreateDebt)
	debts.GET("", debtHandler.GetUserDebts)
	debts.POST("/:id/settle", debtHandler.SettleDebt)
	debts.DELETE("/:id", debtHandler.DeleteDebt)

	// Summary and settings routes
	protected.GET("/summary", summaryHandler.GetSummary)
	protected.GET("/settings/spending-limit", summaryHandler.GetSpendingLimit)
	protected.PUT("/settings/spending-limit", summaryHandler.UpdateSpendingLimit)

	// Report routes
	protected.GET("/reports/monthly", reportHandler.GetMonthlyReport)

	log.Infof("Starting Pennywise backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
