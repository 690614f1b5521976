package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ahmedellithy99/dukkan-backend-sub000/config"
	"github.com/ahmedellithy99/dukkan-backend-sub000/logger"
	"github.com/ahmedellithy99/dukkan-backend-sub000/services"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// main creates an admin account.
// Usage: go run ./cmd/seed
// This is a standalone CLI tool, not part of the API server.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("DUKKAN - Admin Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg := config.Load()
	log := logger.New(logger.Config{Level: "warn"})
	defer func() { _ = log.Sync() }()

	db, err := config.InitDB(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer config.CloseDB(db, log)

	if err := config.Migrate(db); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	fmt.Println("✓ Connected to database")

	name, email, password := getAdminCredentials(bufio.NewScanner(os.Stdin), validator.New())

	// The seeder never issues tokens, so the secret only has to be non-empty.
	jwtService, err := services.NewJWTService(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		log.Fatal("failed to initialize JWT service", zap.Error(err))
	}
	authService := services.NewAuthService(db, jwtService, log)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	admin, err := authService.CreateAdmin(ctx, name, email, password)
	if errors.Is(err, services.ErrEmailTaken) {
		fmt.Printf("❌ A user with email '%s' already exists\n", email)
		os.Exit(1)
	}
	if err != nil {
		log.Fatal("failed to create admin", zap.Error(err))
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", admin.ID)
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("Name:  %s\n", admin.Name)
	fmt.Printf("Role:  %s\n", admin.Role)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the API server: go run .")
	fmt.Println("2. Login at POST /api/v1/auth/login with email and password")
	fmt.Println("3. Use the returned token for /api/v1/admin requests")
	fmt.Println()
}

// getAdminCredentials prompts for the admin details until each one is valid.
func getAdminCredentials(in *bufio.Scanner, v *validator.Validate) (name, email, password string) {
	fmt.Println("Enter Admin Details:")
	fmt.Println()

	name = prompt(in, "Name: ", func(s string) string {
		if v.Var(s, "min=2,max=255") != nil {
			return "Name must be between 2 and 255 characters"
		}
		return ""
	})
	email = prompt(in, "Email: ", func(s string) string {
		if v.Var(s, "required,email") != nil {
			return "Email is not valid"
		}
		return ""
	})
	password = prompt(in, "Password (min 8 characters): ", func(s string) string {
		if v.Var(s, "min=8,max=72") != nil {
			return "Password must be between 8 and 72 characters"
		}
		return ""
	})
	prompt(in, "Confirm Password: ", func(s string) string {
		if s != password {
			return "Passwords do not match"
		}
		return ""
	})

	fmt.Println()
	return name, email, password
}

func prompt(in *bufio.Scanner, label string, check func(string) string) string {
	for {
		fmt.Print(label)
		if !in.Scan() {
			fmt.Println()
			fmt.Println("❌ Input closed")
			os.Exit(1)
		}
		value := strings.TrimSpace(in.Text())
		if msg := check(value); msg != "" {
			fmt.Println("❌ " + msg)
			continue
		}
		return value
	}
}
