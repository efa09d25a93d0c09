package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/merpol/pos-api/internal/application/service"
	"github.com/merpol/pos-api/internal/config"
	"github.com/merpol/pos-api/internal/infrastructure/database"
	"github.com/merpol/pos-api/internal/infrastructure/repository"
	"github.com/merpol/pos-api/internal/presentation/http/handler"
	"github.com/merpol/pos-api/internal/presentation/http/routes"
	"github.com/merpol/pos-api/internal/receipt"
	"github.com/merpol/pos-api/pkg/printer"
	"github.com/merpol/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default merchant and admin user
	if err := database.SeedDefaultData(db, cfg); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	merchantRepo := repository.NewMerchantRepository(db)
	historyRepo := repository.NewIssuanceHistoryRepository(db)
	clientRepo := repository.NewClientRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	printStateRepo := repository.NewPrintStateRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize receipt formatter. The clock runs in the merchant's
	// timezone so daily reports roll over on the business day.
	loc, err := time.LoadLocation(cfg.Database.Timezone)
	if err != nil {
		log.Printf("Warning: Unknown timezone %q, falling back to UTC: %v", cfg.Database.Timezone, err)
		loc = time.UTC
	}
	clock := receipt.LocationClock(loc)
	formatter := receipt.NewFormatter(clock, receipt.UUIDNumbers(), cfg.Receipt.SupportContact)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	cardService := service.NewCardService(historyRepo, clientRepo, printStateRepo, clock)
	transactionService := service.NewTransactionService(transactionRepo, historyRepo, clock)
	receiptService := service.NewReceiptService(
		formatter,
		thermalPrinter,
		transactionRepo,
		merchantRepo,
		printStateRepo,
		clock,
		cfg.Printer.Type,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Card:        handler.NewCardHandler(cardService),
		Transaction: handler.NewTransactionHandler(transactionService),
		Receipt:     handler.NewReceiptHandler(receiptService),
		Printer:     handler.NewPrinterHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Purge expired idempotency keys in the background
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: Failed to purge expired idempotency keys: %v", err)
			}
		}
	}()

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
