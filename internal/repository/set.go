package repository

import (
	"logistics_dashboard/internal/models"
	"time"

	"gorm.io/gorm"
)

// Set groups the repositories of one data backend.
type Set struct {
	Orders    OrderRepository
	Inventory InventoryRepository
	Routes    RouteRepository
	Users     UserRepository
}

func NewGormSet(db *gorm.DB) Set {
	return Set{
		Orders:    NewOrderRepository(db),
		Inventory: NewInventoryRepository(db),
		Routes:    NewRouteRepository(db),
		Users:     NewUserRepository(db),
	}
}

func NewMemorySet(orders []models.Order, items []models.InventoryItem, routes []models.Route, delay time.Duration) Set {
	return Set{
		Orders:    NewMemoryOrderRepository(orders, delay),
		Inventory: NewMemoryInventoryRepository(items, delay),
		Routes:    NewMemoryRouteRepository(routes, delay),
		Users:     NewMemoryUserRepository(),
	}
}
