package repository

import (
	"context"
	"fmt"
	"logistics_dashboard/internal/models"
	"slices"
	"strings"
	"sync"
	"time"
)

// The in-memory repositories serve the mock data set. Each call waits for the
// configured latency first and returns copies, so the backing slices are never
// shared with callers.

func simulateLatency(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func nextID(ids []uint) uint {
	var highest uint
	for _, id := range ids {
		if id > highest {
			highest = id
		}
	}
	return highest + 1
}

func cloneOrder(o models.Order) models.Order {
	o.Items = slices.Clone(o.Items)
	return o
}

func cloneItem(i models.InventoryItem) models.InventoryItem {
	if i.Temperature != nil {
		t := *i.Temperature
		i.Temperature = &t
	}
	if i.TemperatureRange != nil {
		r := *i.TemperatureRange
		i.TemperatureRange = &r
	}
	if i.ExpiryDate != nil {
		d := *i.ExpiryDate
		i.ExpiryDate = &d
	}
	return i
}

func cloneRoute(r models.Route) models.Route {
	r.Orders = slices.Clone(r.Orders)
	return r
}

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	delay  time.Duration
}

func NewMemoryOrderRepository(orders []models.Order, delay time.Duration) OrderRepository {
	r := &memoryOrderRepository{delay: delay}
	for _, o := range orders {
		r.orders = append(r.orders, cloneOrder(o))
	}
	return r
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint, 0, len(r.orders))
	for _, o := range r.orders {
		if o.ID == order.ID || o.OrderNumber == order.OrderNumber {
			return fmt.Errorf("order %d (%s): %w", order.ID, order.OrderNumber, ErrConflict)
		}
		ids = append(ids, o.ID)
	}
	if order.ID == 0 {
		order.ID = nextID(ids)
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	r.orders = append(r.orders, cloneOrder(*order))
	return nil
}

func (r *memoryOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			found := cloneOrder(o)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryOrderRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Order, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orders []models.Order
	for _, o := range r.orders {
		if slices.Contains(ids, o.ID) {
			orders = append(orders, cloneOrder(o))
		}
	}
	return orders, nil
}

func (r *memoryOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, cloneOrder(o))
	}
	return orders, nil
}

type memoryInventoryRepository struct {
	mu    sync.RWMutex
	items []models.InventoryItem
	delay time.Duration
}

func NewMemoryInventoryRepository(items []models.InventoryItem, delay time.Duration) InventoryRepository {
	r := &memoryInventoryRepository{delay: delay}
	for _, i := range items {
		r.items = append(r.items, cloneItem(i))
	}
	return r
}

func (r *memoryInventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint, 0, len(r.items))
	for _, i := range r.items {
		if i.ID == item.ID {
			return fmt.Errorf("inventory item %d: %w", item.ID, ErrConflict)
		}
		ids = append(ids, i.ID)
	}
	if item.ID == 0 {
		item.ID = nextID(ids)
	}
	r.items = append(r.items, cloneItem(*item))
	return nil
}

func (r *memoryInventoryRepository) GetByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, i := range r.items {
		if i.ID == id {
			found := cloneItem(i)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryInventoryRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.InventoryItem, 0, len(r.items))
	for _, i := range r.items {
		items = append(items, cloneItem(i))
	}
	return items, nil
}

type memoryRouteRepository struct {
	mu     sync.RWMutex
	routes []models.Route
	delay  time.Duration
}

func NewMemoryRouteRepository(routes []models.Route, delay time.Duration) RouteRepository {
	r := &memoryRouteRepository{delay: delay}
	for _, rt := range routes {
		r.routes = append(r.routes, cloneRoute(rt))
	}
	return r
}

func (r *memoryRouteRepository) Create(ctx context.Context, route *models.Route) error {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint, 0, len(r.routes))
	for _, rt := range r.routes {
		if rt.ID == route.ID || rt.RouteNumber == route.RouteNumber {
			return fmt.Errorf("route %d (%s): %w", route.ID, route.RouteNumber, ErrConflict)
		}
		ids = append(ids, rt.ID)
	}
	if route.ID == 0 {
		route.ID = nextID(ids)
	}
	r.routes = append(r.routes, cloneRoute(*route))
	return nil
}

func (r *memoryRouteRepository) GetByID(ctx context.Context, id uint) (*models.Route, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rt := range r.routes {
		if rt.ID == id {
			found := cloneRoute(rt)
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRouteRepository) GetAll(ctx context.Context) ([]models.Route, error) {
	if err := simulateLatency(ctx, r.delay); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	routes := make([]models.Route, 0, len(r.routes))
	for _, rt := range r.routes {
		routes = append(routes, cloneRoute(rt))
	}
	return routes, nil
}

// Users are not part of the mock data set, so lookups skip the latency.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]uint, 0, len(r.users))
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("user %s: %w", user.Email, ErrConflict)
		}
		ids = append(ids, u.ID)
	}
	if user.ID == 0 {
		user.ID = nextID(ids)
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users = append(r.users, *user)
	return nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}
