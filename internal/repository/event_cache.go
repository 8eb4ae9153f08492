package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vedika_events/internal/domain/models"
	redisapp "vedika_events/internal/storage/redis"

	"github.com/redis/go-redis/v9"
)

const eventListKey = "gallery:events"

// RedisEventListCache is a read-through cache of the public event listing,
// invalidated on create/delete.
type RedisEventListCache struct {
	client *redisapp.Client
	ttl    time.Duration
}

func NewRedisEventListCache(client *redisapp.Client, ttl time.Duration) *RedisEventListCache {
	return &RedisEventListCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisEventListCache) Get(ctx context.Context) ([]models.GalleryEvent, bool, error) {
	const op = "repository.event_cache.Get"

	raw, err := c.client.Get(ctx, eventListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	var events []models.GalleryEvent
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return events, true, nil
}

func (c *RedisEventListCache) Set(ctx context.Context, events []models.GalleryEvent) error {
	const op = "repository.event_cache.Set"

	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := c.client.Set(ctx, eventListKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (c *RedisEventListCache) Invalidate(ctx context.Context) error {
	const op = "repository.event_cache.Invalidate"

	if err := c.client.Del(ctx, eventListKey).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
