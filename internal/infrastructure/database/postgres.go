package database

import (
	"fmt"
	"log"

	"github.com/merpol/pos-api/internal/config"
	"github.com/merpol/pos-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Account entities
		&entity.Merchant{},
		&entity.User{},

		// Card entities
		&entity.Client{},
		&entity.IssuanceHistory{},

		// Transaction entities
		&entity.Transaction{},

		// System entities
		&entity.PrintState{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the default merchant and, when configured via
// environment variables, an admin operator account.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	var merchant entity.Merchant
	if err := db.Where("name = ?", cfg.Receipt.MerchantName).First(&merchant).Error; err != nil {
		merchant = entity.Merchant{
			Name:           cfg.Receipt.MerchantName,
			SupportContact: cfg.Receipt.SupportContact,
		}
		if err := db.Create(&merchant).Error; err != nil {
			return fmt.Errorf("failed to create default merchant: %w", err)
		}
		log.Printf("Default merchant created: %s", merchant.Name)
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existing entity.User
		if err := db.Where("email = ?", adminEmail).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}

			if adminName == "" {
				adminName = "Admin"
			}
			firstName := adminName
			lastName := ""
			for i, c := range adminName {
				if c == ' ' {
					firstName = adminName[:i]
					lastName = adminName[i+1:]
					break
				}
			}

			admin := entity.User{
				MerchantID: merchant.ID,
				FirstName:  firstName,
				LastName:   lastName,
				Email:      adminEmail,
				Password:   string(hashedPassword),
				IsAdmin:    true,
			}
			if err := db.Create(&admin).Error; err != nil {
				return fmt.Errorf("failed to create admin user: %w", err)
			}
			log.Printf("Admin user created: %s", adminEmail)
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
