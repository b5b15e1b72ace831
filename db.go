package main

import (
	"log"
	"os"

	"bistro/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func openDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		// Migrate models individually so a failure on one doesn't block others
		if err := db.AutoMigrate(&models.User{}); err != nil {
			log.Printf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.MenuItem{}); err != nil {
			log.Printf("migration warning (menu_items): %v", err)
		}
		if err := db.AutoMigrate(&models.Reservation{}); err != nil {
			log.Printf("migration warning (reservations): %v", err)
		}
		if err := db.AutoMigrate(&models.Order{}); err != nil {
			log.Printf("migration warning (orders): %v", err)
		}
		if err := db.AutoMigrate(&models.Review{}); err != nil {
			log.Printf("migration warning (reviews): %v", err)
		}
		if err := db.AutoMigrate(&models.ContactMessage{}); err != nil {
			log.Printf("migration warning (contact_messages): %v", err)
		}
		if err := db.AutoMigrate(&models.CartItem{}); err != nil {
			log.Printf("migration warning (cart_items): %v", err)
		}
	}
	return db, nil
}

// seedDB ensures an admin account exists and the upload directory is present.
// The admin password comes from ADMIN_PASSWORD; without it no admin is seeded.
func seedDB(db *gorm.DB, cfg *Config) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword != "" {
		var count int64
		db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count)
		if count == 0 {
			hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("failed to hash admin password: %v", err)
			} else {
				admin := models.User{
					Email:        adminEmail,
					FullName:     "Administrator",
					PasswordHash: hash,
					IsActive:     true,
					IsAdmin:      true,
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("failed to seed admin user: %v", err)
				} else {
					log.Printf("Seeded admin user: email=%s", adminEmail)
				}
			}
		}
	}
	// Ensure upload directory exists
	if err := os.MkdirAll(cfg.UploadBase, 0755); err != nil {
		log.Printf("failed to create upload base dir %s: %v", cfg.UploadBase, err)
	}
}
