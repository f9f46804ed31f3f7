package database

import (
	"errors"
	"fmt"

	"github.com/personnalite/estoque-api/internal/config"
	"github.com/personnalite/estoque-api/internal/domain/entity"
	"github.com/personnalite/estoque-api/internal/domain/enum"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
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

	logrus.Info("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	if err := db.AutoMigrate(&entity.Product{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

// SeedDefaultData creates the reference products when they do not exist yet.
func SeedDefaultData(db *gorm.DB) error {
	products := []entity.Product{
		{
			Name:     "Monster Energy",
			Price:    decimal.NewFromFloat(12.00),
			Stock:    10,
			MinStock: 1,
			Category: enum.CategoryEnergyDrink,
			Active:   true,
		},
		{
			Name:     "Água",
			Price:    decimal.NewFromFloat(3.00),
			Stock:    10,
			MinStock: 1,
			Category: enum.CategoryNaturalDrink,
			Active:   true,
		},
		{
			Name:     "Powerade",
			Price:    decimal.NewFromFloat(7.00),
			Stock:    10,
			MinStock: 1,
			Category: enum.CategorySportsDrink,
			Active:   true,
		},
	}

	for i := range products {
		var existing entity.Product
		err := db.Where("name = ?", products[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := db.Create(&products[i]).Error; err != nil {
			logrus.WithField("product", products[i].Name).Warnf("failed to seed product: %v", err)
			continue
		}
		logrus.WithField("product", products[i].Name).Info("Seeded product")
	}

	return nil
}
