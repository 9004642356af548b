package statscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dispatch/internal/entities"
	"dispatch/internal/service/stats"
)

const keyPrefix = "courier:stats:"

// Cache keeps computed courier aggregates in Redis. Entries expire with
// the TTL passed on Set and can be dropped early through Invalidate.
type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) *Cache {
	return &Cache{
		client: client,
	}
}

func (c *Cache) Get(ctx context.Context, courierID string) (*entities.CourierStats, error) {
	payload, err := c.client.Get(ctx, key(courierID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, stats.ErrCacheMiss
		}
		return nil, fmt.Errorf("stats cache get: %w", err)
	}

	var cached entities.CourierStats
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, fmt.Errorf("stats cache decode: %w", err)
	}
	return &cached, nil
}

func (c *Cache) Set(ctx context.Context, computed entities.CourierStats, ttl time.Duration) error {
	payload, err := json.Marshal(computed)
	if err != nil {
		return fmt.Errorf("stats cache encode: %w", err)
	}

	if err := c.client.Set(ctx, key(computed.CourierID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("stats cache set: %w", err)
	}
	return nil
}

func (c *Cache) Invalidate(ctx context.Context, courierID string) error {
	if err := c.client.Del(ctx, key(courierID)).Err(); err != nil {
		return fmt.Errorf("stats cache invalidate: %w", err)
	}
	return nil
}

func key(courierID string) string {
	return keyPrefix + courierID
}
