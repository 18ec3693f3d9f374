// Package server assembles the HTTP router.
package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"expensetracker/internal/config"
	"expensetracker/internal/dashboard"
	_ "expensetracker/internal/docs" // Import swagger docs
	"expensetracker/internal/handlers"
	"expensetracker/internal/middleware"
	"expensetracker/internal/password"
	"expensetracker/internal/services"
	"expensetracker/internal/validator"
)

// Dependencies are the collaborators wired into the handlers.
type Dependencies struct {
	Users        services.UserServicer
	Transactions services.TransactionServicer
	Budgets      services.BudgetServicer
	Audit        services.AuditServicer
	Issuer       *middleware.TokenIssuer
	Sessions     *dashboard.Registry
	Formatter    *dashboard.Formatter
}

// NewDependencies builds the services over db and the session state for cfg.
func NewDependencies(cfg *config.Config, db *gorm.DB) (*Dependencies, error) {
	hasher, err := password.NewHasher(cfg.PasswordScheme)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	return &Dependencies{
		Users:        services.NewUserService(db, hasher),
		Transactions: services.NewTransactionService(db),
		Budgets:      services.NewBudgetService(db),
		Audit:        services.NewAuditService(db),
		Issuer:       middleware.NewTokenIssuer(cfg),
		Sessions:     dashboard.NewRegistry(),
		Formatter:    dashboard.NewFormatter(cfg.CurrencySymbol),
	}, nil
}

// NewRouter registers every route on a new gin engine.
func NewRouter(deps *Dependencies) *gin.Engine {
	validator.Register()

	authHandler := handlers.NewAuthHandler(deps.Users, deps.Audit, deps.Issuer, deps.Sessions)
	categoryHandler := handlers.NewCategoryHandler()
	alerts := handlers.NewBudgetAlerts(deps.Transactions, deps.Budgets, deps.Sessions)
	transactionHandler := handlers.NewTransactionHandler(deps.Transactions, deps.Audit, alerts)
	budgetHandler := handlers.NewBudgetHandler(deps.Budgets, deps.Audit, alerts)
	dashboardHandler := handlers.NewDashboardHandler(alerts, deps.Formatter)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.Issuer, deps.Sessions))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/categories", categoryHandler.GetCategories)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	transactions := protected.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/export", transactionHandler.ExportTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budget := protected.Group("/budget")
	budget.GET("", budgetHandler.GetBudget)
	budget.PUT("", budgetHandler.SetBudget)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
