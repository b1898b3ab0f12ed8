package main

import (
	"context"
	"log"
	"logistics_dashboard/internal/bootstrap"
	"logistics_dashboard/internal/config"
	"logistics_dashboard/internal/handlers"
	"logistics_dashboard/internal/redis"
	"logistics_dashboard/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Initialize data backend
	repos, cleanup, err := bootstrap.OpenRepositories(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to open repositories:", err)
	}
	defer cleanup()

	// Redis backs the list cache and sessions when configured
	var (
		cache    services.ListCache
		sessions = services.NewMemorySessionStore()
	)
	if cfg.RedisURL != "" {
		redisClient, err := redis.Initialize(cfg.RedisURL)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()

		cache = redisClient
		sessions = redisClient
	} else {
		log.Println("REDIS_URL not set, list cache disabled and sessions kept in memory")
	}

	// Initialize services
	orderService := services.NewOrderService(repos.Orders, cache, cfg.ListCacheTTL())
	inventoryService := services.NewInventoryService(repos.Inventory, cache, cfg.ListCacheTTL())
	routeService := services.NewRouteService(repos.Routes, repos.Orders, cache, cfg.ListCacheTTL())
	dashboardService := services.NewDashboardService(repos)
	userService := services.NewUserService(repos.Users, sessions, cfg.SessionTTL())

	// Initialize handlers
	apiHandler := handlers.NewAPIHandler(orderService, inventoryService, routeService, dashboardService, userService)
	router := handlers.NewRouter(apiHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
