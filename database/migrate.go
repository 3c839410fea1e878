package database

import (
	"fmt"
	"log"

	"issavie_backend/internal/config"
	"issavie_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens (and caches) the GORM connection from config.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates the uuid extension and migrates every model.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.MagicLink{},
		&models.Trip{},
		&models.TripMember{},
		&models.Invite{},
		&models.ItineraryDay{},
		&models.ItineraryItem{},
		&models.ChangeRequest{},
		&models.Announcement{},
		&models.Comment{},
		&models.TripEssentials{},
		&models.Notification{},
		&models.AnalyticsEvent{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Println("Database migration completed")
	return nil
}
