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

// RouteDetail is a route with the orders it references. Ids that do not
// resolve to an order are left out.
type RouteDetail struct {
	models.Route
	OrderDetails []models.Order `json:"order_details"`
}

type RouteService interface {
	ListRoutes(ctx context.Context, criteria filter.Criteria) ([]models.Route, error)
	GetRoute(ctx context.Context, id uint) (*RouteDetail, error)
}

type routeService struct {
	routeRepo repository.RouteRepository
	orderRepo repository.OrderRepository
	cache     ListCache
	cacheTTL  time.Duration
}

// NewRouteService builds the route service. cache may be nil.
func NewRouteService(routeRepo repository.RouteRepository, orderRepo repository.OrderRepository, cache ListCache, cacheTTL time.Duration) RouteService {
	return &routeService{routeRepo: routeRepo, orderRepo: orderRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *routeService) ListRoutes(ctx context.Context, criteria filter.Criteria) (_ []models.Route, err error) {
	defer obs.Time(ctx, "routes.List")(&err)

	return cachedList(ctx, s.cache, s.cacheTTL, "routes|"+criteria.Key(), func() ([]models.Route, error) {
		routes, err := s.routeRepo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list routes: %w", err)
		}
		return filter.Routes(routes, criteria), nil
	})
}

func (s *routeService) GetRoute(ctx context.Context, id uint) (*RouteDetail, error) {
	route, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get route %d: %w", id, err)
	}

	orders, err := s.orderRepo.GetByIDs(ctx, route.Orders)
	if err != nil {
		return nil, fmt.Errorf("get route %d orders: %w", id, err)
	}
	if orders == nil {
		orders = []models.Order{}
	}

	return &RouteDetail{Route: *route, OrderDetails: orders}, nil
}
