package main

import (
	"context"
	"fmt"
	"log"
	"logistics_dashboard/internal/config"
	"logistics_dashboard/internal/database"
	"logistics_dashboard/internal/fixtures"
	"logistics_dashboard/internal/migrations"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.ResetDatabase(context.Background(), db); err != nil {
		log.Fatal("Failed to reset database:", err)
	}

	fmt.Println("Default user:")
	fmt.Println("Email:", fixtures.DefaultUser().Email)
	fmt.Println("Password:", fixtures.DefaultUserPassword)
}
