package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/roosly/site-api/internal/core/domain"
)

const (
	listCacheKey = "customers:list"
	listCacheTTL = 30 * time.Second
)

// ListCache is a short-TTL, best-effort cache of the full customer list.
// The store remains the source of truth; every mutation invalidates the
// cached copy, and any Redis failure degrades silently to a miss.
type ListCache struct {
	client *redis.Client
	logger zerolog.Logger
}

func NewListCache(client *redis.Client, logger zerolog.Logger) *ListCache {
	return &ListCache{client: client, logger: logger}
}

func (c *ListCache) Get(ctx context.Context) ([]domain.Customer, bool) {
	payload, err := c.client.Get(ctx, listCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn().Err(err).Msg("customer list cache read failed")
		}
		return nil, false
	}

	var customers []domain.Customer
	if err := json.Unmarshal(payload, &customers); err != nil {
		c.logger.Warn().Err(err).Msg("customer list cache payload corrupt")
		return nil, false
	}
	return customers, true
}

func (c *ListCache) Set(ctx context.Context, customers []domain.Customer) {
	payload, err := json.Marshal(customers)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listCacheKey, payload, listCacheTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("customer list cache write failed")
	}
}

func (c *ListCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, listCacheKey).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("customer list cache invalidation failed")
	}
}
