package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/merpol/pos-api/internal/config"
	domainRepo "github.com/merpol/pos-api/internal/domain/repository"
	"github.com/merpol/pos-api/internal/presentation/http/handler"
	"github.com/merpol/pos-api/internal/presentation/http/middleware"
	"github.com/merpol/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Card        *handler.CardHandler
	Transaction *handler.TransactionHandler
	Receipt     *handler.ReceiptHandler
	Printer     *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-merchant rate limiter
		rateLimiter := middleware.NewMerchantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Cards
	registerCardRoutes(protected, h)

	// Transactions
	registerTransactionRoutes(protected, h, deps)

	// Receipts
	registerReceiptRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerCardRoutes(protected *gin.RouterGroup, h *Handlers) {
	cards := protected.Group("/cards")
	{
		cards.GET("/daily-report-status", h.Card.DailyReportStatus)
		cards.GET("/:card_number", h.Card.Lookup)
	}

	protected.GET("/clients/:code", h.Card.GetClient)
}

func registerTransactionRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	transactions := protected.Group("/transactions")
	{
		transactions.GET("", h.Transaction.List)
		// Transaction creation uses idempotency middleware to prevent
		// double charges from terminal retries
		transactions.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Transaction.Create)
		transactions.GET("/daily", h.Transaction.ListToday)
	}
}

func registerReceiptRoutes(protected *gin.RouterGroup, h *Handlers) {
	receipts := protected.Group("/receipts")
	{
		receipts.POST("/sale", h.Receipt.PrintSale)
		receipts.POST("/balance", h.Receipt.PrintBalance)
		receipts.POST("/daily", h.Receipt.PrintDaily)
		receipts.POST("/reprint", h.Receipt.Reprint)
		receipts.GET("/last", h.Receipt.Last)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
