// Package bootstrap opens the data backend selected by configuration.
package bootstrap

import (
	"context"
	"fmt"
	"log"
	"logistics_dashboard/internal/config"
	"logistics_dashboard/internal/database"
	"logistics_dashboard/internal/fixtures"
	"logistics_dashboard/internal/migrations"
	"logistics_dashboard/internal/repository"
	"logistics_dashboard/internal/services"
)

// OpenRepositories returns the repositories for cfg.DataBackend and a func that
// releases them. Both backends get the default profile user.
func OpenRepositories(ctx context.Context, cfg *config.Config) (repository.Set, func(), error) {
	var (
		repos   repository.Set
		cleanup = func() {}
	)

	switch cfg.DataBackend {
	case config.BackendMemory:
		repos = MemoryRepositories(cfg)
		log.Printf("Serving mock data from memory (delay=%s)", cfg.MockDelay)
	case config.BackendPostgres:
		db, err := database.Initialize(cfg.DatabaseURL)
		if err != nil {
			return repository.Set{}, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return repository.Set{}, nil, fmt.Errorf("open repositories: %w", err)
		}
		repos = repository.NewGormSet(db)
		cleanup = func() { sqlDB.Close() }
	default:
		return repository.Set{}, nil, fmt.Errorf("open repositories: unknown DATA_BACKEND %q", cfg.DataBackend)
	}

	if err := migrations.SeedDefaultUser(ctx, services.NewUserService(repos.Users, nil, 0)); err != nil {
		cleanup()
		return repository.Set{}, nil, err
	}
	return repos, cleanup, nil
}

// MemoryRepositories serves the fixture data with the configured mock delay.
func MemoryRepositories(cfg *config.Config) repository.Set {
	items := fixtures.InventoryItems()
	for i := range items {
		services.DeriveAttention(&items[i])
	}
	return repository.NewMemorySet(fixtures.Orders(), items, fixtures.Routes(), cfg.MockDelay)
}
