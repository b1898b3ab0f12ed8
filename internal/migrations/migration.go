package migrations

import (
	"context"
	"errors"
	"fmt"
	"log"
	"logistics_dashboard/internal/database"
	"logistics_dashboard/internal/fixtures"
	"logistics_dashboard/internal/repository"
	"logistics_dashboard/internal/services"

	"gorm.io/gorm"
)

// ResetDatabase drops and recreates every dashboard table, then loads the
// mock data set.
func ResetDatabase(ctx context.Context, db *gorm.DB) error {
	log.Println("Dropping existing tables...")
	if err := db.Migrator().DropTable(database.Models()...); err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	repos := repository.NewGormSet(db)
	if err := SeedFixtures(ctx, repos); err != nil {
		return err
	}
	if err := SeedDefaultUser(ctx, services.NewUserService(repos.Users, nil, 0)); err != nil {
		return err
	}

	log.Println("Database reset completed successfully!")
	return nil
}

// SeedFixtures inserts the mock orders, inventory and routes. Inventory flags
// are derived from temperature compliance on the way in.
func SeedFixtures(ctx context.Context, repos repository.Set) error {
	log.Println("Seeding mock data...")

	for _, order := range fixtures.Orders() {
		if err := repos.Orders.Create(ctx, &order); err != nil {
			return fmt.Errorf("seed order %s: %w", order.OrderNumber, err)
		}
	}

	for _, item := range fixtures.InventoryItems() {
		services.DeriveAttention(&item)
		if err := repos.Inventory.Create(ctx, &item); err != nil {
			return fmt.Errorf("seed inventory item %s: %w", item.SKU, err)
		}
	}

	for _, route := range fixtures.Routes() {
		if err := repos.Routes.Create(ctx, &route); err != nil {
			return fmt.Errorf("seed route %s: %w", route.RouteNumber, err)
		}
	}

	return nil
}

// SeedDefaultUser creates the default profile user unless it already exists.
func SeedDefaultUser(ctx context.Context, users services.UserService) error {
	user := fixtures.DefaultUser()
	err := users.CreateUser(ctx, &user, fixtures.DefaultUserPassword)
	if errors.Is(err, services.ErrEmailTaken) {
		log.Println("Default user already exists")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed default user: %w", err)
	}

	log.Printf("Default user created: %s", user.Email)
	return nil
}
