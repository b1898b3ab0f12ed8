package services

import (
	"context"
	"errors"
	"log"
	"time"

	"logistics_dashboard/internal/obs"
	"logistics_dashboard/internal/redis"
)

// ListCache stores filtered list results. *redis.Client satisfies it.
type ListCache interface {
	GetCache(ctx context.Context, key string, dest interface{}) error
	SetCache(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// cachedList serves key from cache when possible and fills it from load
// otherwise. Cache failures are logged and never fail the request.
func cachedList[T any](ctx context.Context, cache ListCache, ttl time.Duration, key string, load func() ([]T, error)) ([]T, error) {
	if cache == nil {
		return load()
	}

	var cached []T
	err := cache.GetCache(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.ErrCacheMiss) {
		log.Printf("req_id=%s cache get key=%s err=%v", obs.RequestID(ctx), key, err)
	}

	out, err := load()
	if err != nil {
		return nil, err
	}
	if err := cache.SetCache(ctx, key, out, ttl); err != nil {
		log.Printf("req_id=%s cache set key=%s err=%v", obs.RequestID(ctx), key, err)
	}
	return out, nil
}
