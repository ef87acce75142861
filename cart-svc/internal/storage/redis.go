package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bitecart/cart-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const pendingMarker = "pending"

// RedisProductCache keeps catalog products as JSON under product:<id>.
type RedisProductCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisProductCache(client *redis.Client, ttl time.Duration) *RedisProductCache {
	return &RedisProductCache{Client: client, TTL: ttl}
}

func (c *RedisProductCache) ProductKey(productID string) string {
	return "product:" + productID
}

func (c *RedisProductCache) Get(ctx context.Context, productID string) (*domain.Product, bool, error) {
	raw, err := c.Client.Get(ctx, c.ProductKey(productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var product domain.Product
	if err := json.Unmarshal(raw, &product); err != nil {
		return nil, false, err
	}
	return &product, true, nil
}

func (c *RedisProductCache) Set(ctx context.Context, product domain.Product) error {
	payload, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.ProductKey(product.ID), payload, c.TTL).Err()
}

func (c *RedisProductCache) Delete(ctx context.Context, productID string) error {
	return c.Client.Del(ctx, c.ProductKey(productID)).Err()
}

// RedisIdempotencyStore guards order submission. A key is first reserved with
// a pending marker, then either released or replaced by the created order.
type RedisIdempotencyStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisIdempotencyStore(client *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{Client: client, TTL: ttl}
}

func (s *RedisIdempotencyStore) OrderKey(key string) string {
	return "idempotency:order:" + key
}

func (s *RedisIdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	return s.Client.SetNX(ctx, s.OrderKey(key), pendingMarker, s.TTL).Result()
}

// Lookup reports a completed order for key. A pending reservation is not a hit.
func (s *RedisIdempotencyStore) Lookup(ctx context.Context, key string) (*domain.Order, bool, error) {
	raw, err := s.Client.Get(ctx, s.OrderKey(key)).Result()
	if errors.Is(err, redis.Nil) || raw == pendingMarker {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var order domain.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, false, err
	}
	return &order, true, nil
}

func (s *RedisIdempotencyStore) Complete(ctx context.Context, key string, order domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.OrderKey(key), payload, s.TTL).Err()
}

func (s *RedisIdempotencyStore) Release(ctx context.Context, key string) error {
	return s.Client.Del(ctx, s.OrderKey(key)).Err()
}
