package services

import (
	"context"
	"fmt"
	"logistics_dashboard/internal/filter"
	"logistics_dashboard/internal/models"
	"logistics_dashboard/internal/obs"
	"logistics_dashboard/internal/repository"
	"time"
)

type OrderService interface {
	ListOrders(ctx context.Context, criteria filter.Criteria) ([]models.Order, error)
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cache     ListCache
	cacheTTL  time.Duration
}

// NewOrderService builds the order service. cache may be nil.
func NewOrderService(orderRepo repository.OrderRepository, cache ListCache, cacheTTL time.Duration) OrderService {
	return &orderService{orderRepo: orderRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *orderService) ListOrders(ctx context.Context, criteria filter.Criteria) (_ []models.Order, err error) {
	defer obs.Time(ctx, "orders.List")(&err)

	return cachedList(ctx, s.cache, s.cacheTTL, "orders|"+criteria.Key(), func() ([]models.Order, error) {
		orders, err := s.orderRepo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		return filter.Orders(orders, criteria), nil
	})
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return order, nil
}
