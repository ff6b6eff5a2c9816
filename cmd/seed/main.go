package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/alexchen-dev/portfolio-backend/config"
	"github.com/alexchen-dev/portfolio-backend/models"
	"github.com/alexchen-dev/portfolio-backend/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates an admin account for the lead dashboard.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("PORTFOLIO BACKEND - Admin Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	if err := config.LeadsGorm.AutoMigrate(&models.Admin{}); err != nil {
		log.Fatalf("Failed to migrate admins table: %v", err)
	}

	email, password, name := getAdminCredentials()

	// Check if admin already exists
	var existingAdmin models.Admin
	if err := config.LeadsGorm.Where("email = ?", email).First(&existingAdmin).Error; err == nil {
		fmt.Printf("❌ Admin with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	authService := services.NewAdminAuthService(config.LeadsGorm)
	passwordHash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	log.Println("✓ Password hashed securely")

	admin := models.Admin{
		ID:           uuid.Must(uuid.NewV7()),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}

	if err := config.LeadsGorm.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Name:  %s\n", admin.Name)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/auth/login with email and password")
	fmt.Println("3. Use the returned token for authenticated requests")
	fmt.Println()
}

// getAdminCredentials prompts for admin details
func getAdminCredentials() (email, password, name string) {
	fmt.Println("Enter Admin Details:")
	fmt.Println()

	for {
		fmt.Print("Email: ")
		fmt.Scanln(&email)
		if email != "" {
			break
		}
		fmt.Println("❌ Email cannot be empty")
	}

	for {
		fmt.Print("Name: ")
		fmt.Scanln(&name)
		if name != "" {
			break
		}
		fmt.Println("❌ Name cannot be empty")
	}

	authService := services.NewAdminAuthService(nil)
	for {
		fmt.Print("Password (min 8 characters): ")
		fmt.Scanln(&password)
		if !authService.ValidatePassword(password) {
			fmt.Println("❌ Password must be at least 8 characters")
			continue
		}
		break
	}

	for {
		fmt.Print("Confirm Password: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm == password {
			break
		}
		fmt.Println("❌ Passwords do not match")
	}

	return email, password, name
}
