package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistics_dashboard/internal/filter"
	"logistics_dashboard/internal/redis"

	"github.com/alicebob/miniredis/v2"
)

func TestOrderService_ListOrders(t *testing.T) {
	svc := NewOrderService(fixtureSet().Orders, nil, 0)

	orders, err := svc.ListOrders(context.Background(), filter.Criteria{Category: "Delayed"})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 5 {
		t.Errorf("expected order 5 only, got %+v", orders)
	}
}

func TestOrderService_ListOrdersUsesCache(t *testing.T) {
	repo := &countingOrderRepo{OrderRepository: fixtureSet().Orders}
	cache := newFakeCache()
	svc := NewOrderService(repo, cache, time.Minute)
	ctx := context.Background()

	criteria := filter.Criteria{Query: "chicago", Category: "Pending"}
	first, err := svc.ListOrders(ctx, criteria)
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	second, err := svc.ListOrders(ctx, criteria)
	if err != nil {
		t.Fatalf("second list: %v", err)
	}

	if repo.calls != 1 || cache.hits != 1 {
		t.Errorf("expected one load and one cache hit, got calls=%d hits=%d", repo.calls, cache.hits)
	}
	if len(first) != 2 || len(second) != 2 || second[1].ID != 4 || len(second[1].Items) != 3 {
		t.Errorf("cached result differs: %+v", second)
	}

	if _, err := svc.ListOrders(ctx, filter.Criteria{Query: "harbor"}); err != nil {
		t.Fatalf("third list: %v", err)
	}
	if repo.calls != 2 {
		t.Errorf("different criteria should miss the cache, calls=%d", repo.calls)
	}
}

func TestOrderService_ListOrdersWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.Initialize("redis://" + mr.Addr())
	if err != nil {
		t.Fatalf("redis: %v", err)
	}
	defer client.Close()

	svc := NewOrderService(fixtureSet().Orders, client, time.Minute)
	ctx := context.Background()

	if _, err := svc.ListOrders(ctx, filter.Criteria{Category: "In Transit"}); err != nil {
		t.Fatalf("list orders: %v", err)
	}
	key := "cache:orders|" + filter.Criteria{Category: "In Transit"}.Key()
	if !mr.Exists(key) {
		t.Fatalf("expected %s in redis, keys=%v", key, mr.Keys())
	}

	cached, err := svc.ListOrders(ctx, filter.Criteria{Category: "In Transit"})
	if err != nil {
		t.Fatalf("cached list: %v", err)
	}
	if len(cached) != 1 || cached[0].OrderNumber != "ORD-2025-002" || !cached[0].DeliveryDate.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected cached orders: %+v", cached)
	}

	mr.FastForward(2 * time.Minute)
	if mr.Exists(key) {
		t.Errorf("expected cache entry to expire")
	}
}

func TestOrderService_GetOrder(t *testing.T) {
	svc := NewOrderService(fixtureSet().Orders, nil, 0)

	order, err := svc.GetOrder(context.Background(), 3)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if order.CustomerName != "Healthy Eats Café" {
		t.Errorf("unexpected order: %+v", order)
	}

	if _, err := svc.GetOrder(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
