package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"bistro/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: go run ./cmd/create_admin <email> <password> [full name]")
		os.Exit(2)
	}
	email := os.Args[1]
	password := os.Args[2]
	fullName := "Administrator"
	if len(os.Args) > 3 {
		fullName = strings.Join(os.Args[3:], " ")
	}

	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	// check existing
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		if !existing.IsAdmin {
			existing.IsAdmin = true
			if err := db.Save(&existing).Error; err != nil {
				log.Fatalf("failed to promote user: %v", err)
			}
			fmt.Printf("promoted existing user %s to admin (id=%d)\n", email, existing.ID)
			return
		}
		fmt.Printf("admin %s already exists (id=%d)\n", email, existing.ID)
		return
	}

	if len(password) < 6 {
		log.Fatal("password too short (min 6)")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	user := models.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}
	fmt.Printf("created admin %s id=%d\n", email, user.ID)
}
