package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"szepseg-katalogus/internal/config"
	"szepseg-katalogus/internal/repository"
	"szepseg-katalogus/internal/service"
)

// Provisions an admin account. There is no self-service admin registration.
func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	fullName := flag.String("name", "Administrator", "admin full name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	adminRepo := repository.NewAdminRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	authService := service.NewAuthService(adminRepo, sessionRepo, cfg)

	admin, err := authService.CreateAdmin(context.Background(), *email, *password, *fullName)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %s created with id %s", admin.Email, admin.ID)
}
