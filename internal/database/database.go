// Package database opens the GORM connection and migrates the schema.
package database

import (
	"fmt"
	"log"

	"takeaway/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the configured driver ("sqlite" or "postgres").
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the tables for every model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Product{}, &models.Restaurant{}, &models.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// SeedDemoData fills an empty database with a restaurant and a few
// products so the admin has something to work with.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		log.Println("Demo data skipped: products already exist")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range demoProducts {
			if err := tx.Create(demoProduct(i)).Error; err != nil {
				return fmt.Errorf("failed to seed product %s: %w", demoProducts[i].name, err)
			}
		}
		if err := tx.Create(demoRestaurant()).Error; err != nil {
			return fmt.Errorf("failed to seed restaurant: %w", err)
		}
		log.Printf("Seeded %d products and 1 restaurant", len(demoProducts))
		return nil
	})
}
