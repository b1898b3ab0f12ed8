package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"logistics_dashboard/internal/fixtures"
	"logistics_dashboard/internal/models"
	"logistics_dashboard/internal/redis"
	"logistics_dashboard/internal/repository"
)

func fixtureSet() repository.Set {
	items := fixtures.InventoryItems()
	for i := range items {
		DeriveAttention(&items[i])
	}
	return repository.NewMemorySet(fixtures.Orders(), items, fixtures.Routes(), 0)
}

// fakeCache keeps JSON values in a map, like the redis client does.
type fakeCache struct {
	mu     sync.Mutex
	values map[string][]byte
	hits   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte)}
}

func (c *fakeCache) GetCache(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.values[key]
	if !ok {
		return redis.ErrCacheMiss
	}
	c.hits++
	return json.Unmarshal(raw, dest)
}

func (c *fakeCache) SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = raw
	return nil
}

type countingOrderRepo struct {
	repository.OrderRepository
	calls int
}

func (r *countingOrderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	r.calls++
	return r.OrderRepository.GetAll(ctx)
}

var errBackend = errors.New("backend down")

type failingRouteRepo struct {
	repository.RouteRepository
}

func (failingRouteRepo) GetAll(ctx context.Context) ([]models.Route, error) {
	return nil, errBackend
}
