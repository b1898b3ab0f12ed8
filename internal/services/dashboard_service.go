package services

import (
	"context"
	"fmt"
	"log"
	"logistics_dashboard/internal/compliance"
	"logistics_dashboard/internal/filter"
	"logistics_dashboard/internal/models"
	"logistics_dashboard/internal/obs"
	"logistics_dashboard/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	recentOrdersLimit   = 3
	attentionItemsLimit = 2
)

type Summary struct {
	ActiveOrders       int             `json:"active_orders"`
	TotalRoutes        int             `json:"total_routes"`
	RoutesInTransit    int             `json:"routes_in_transit"`
	OnTimeRate         decimal.Decimal `json:"on_time_rate"`
	TemperatureAlerts  int             `json:"temperature_alerts"`
	TotalDistanceMiles decimal.Decimal `json:"total_distance_miles"`
	AttentionItems     []ItemDetail    `json:"attention_items"`
	RecentOrders       []models.Order  `json:"recent_orders"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*Summary, error)
}

type dashboardService struct {
	repos repository.Set
}

func NewDashboardService(repos repository.Set) DashboardService {
	return &dashboardService{repos: repos}
}

// Summary loads orders, inventory and routes concurrently and aggregates them.
func (s *dashboardService) Summary(ctx context.Context) (_ *Summary, err error) {
	defer obs.Time(ctx, "dashboard.Summary")(&err)

	var (
		orders []models.Order
		items  []models.InventoryItem
		routes []models.Route
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.repos.Orders.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		items, err = s.repos.Inventory.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		routes, err = s.repos.Routes.GetAll(gctx)
		if err != nil {
			return fmt.Errorf("load routes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}

	return summarize(ctx, orders, items, routes), nil
}

func summarize(ctx context.Context, orders []models.Order, items []models.InventoryItem, routes []models.Route) *Summary {
	sum := &Summary{
		TotalRoutes:        len(routes),
		TotalDistanceMiles: decimal.Zero,
	}

	delivered, delayed := 0, 0
	for _, o := range orders {
		if o.Status.Active() {
			sum.ActiveOrders++
		}
		switch o.Status {
		case models.OrderDelivered:
			delivered++
		case models.OrderDelayed:
			delayed++
		}
	}
	sum.OnTimeRate = onTimeRate(delivered, delayed)

	for _, item := range items {
		if compliance.ItemStatus(item).Alert() {
			sum.TemperatureAlerts++
		}
	}

	for i := range routes {
		if routes[i].Status == models.RouteInTransit {
			sum.RoutesInTransit++
		}
		miles, err := routes[i].DistanceMiles()
		if err != nil {
			log.Printf("req_id=%s dashboard: skip distance: %v", obs.RequestID(ctx), err)
			continue
		}
		sum.TotalDistanceMiles = sum.TotalDistanceMiles.Add(miles)
	}

	flagged := filter.Inventory(items, filter.Criteria{FlagOnly: true})
	sum.AttentionItems = DescribeAll(flagged[:min(len(flagged), attentionItemsLimit)])
	sum.RecentOrders = orders[:min(len(orders), recentOrdersLimit)]
	if sum.RecentOrders == nil {
		sum.RecentOrders = []models.Order{}
	}

	return sum
}

// onTimeRate is the percentage of finished deliveries that were not delayed,
// rounded to one decimal. With nothing finished it is 100.
func onTimeRate(delivered, delayed int) decimal.Decimal {
	finished := delivered + delayed
	if finished == 0 {
		return decimal.NewFromInt(100)
	}
	return decimal.NewFromInt(int64(delivered * 100)).
		Div(decimal.NewFromInt(int64(finished))).
		Round(1)
}
