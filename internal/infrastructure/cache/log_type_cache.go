// Package cache provides Redis-backed caches for rarely changing reference data.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	inventoryapp "github.com/marketplace/backend/internal/application/inventory"
	"github.com/marketplace/backend/internal/domain/inventory"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	logTypeCacheKey   = "inventory:log_types"
	defaultLogTypeTTL = 15 * time.Minute
	redisDialTimeout  = 5 * time.Second
)

// Ensure RedisLogTypeCache implements LogTypeCache
var _ inventoryapp.LogTypeCache = (*RedisLogTypeCache)(nil)

// RedisLogTypeCache caches the inventory movement type list in Redis.
// The list is seeded reference data and changes only via migrations, so a
// short TTL is enough to pick up new deployments.
type RedisLogTypeCache struct {
	client     *redis.Client
	ownsClient bool
	ttl        time.Duration
	logger     *zap.Logger
}

// RedisLogTypeCacheOption is a functional option for configuring the cache
type RedisLogTypeCacheOption func(*RedisLogTypeCache)

// WithTTL sets the cache entry lifetime
func WithTTL(ttl time.Duration) RedisLogTypeCacheOption {
	return func(c *RedisLogTypeCache) {
		c.ttl = ttl
	}
}

// WithCacheLogger sets the logger for the cache
func WithCacheLogger(logger *zap.Logger) RedisLogTypeCacheOption {
	return func(c *RedisLogTypeCache) {
		c.logger = logger
	}
}

// NewRedisLogTypeCache creates a cache with its own Redis client
func NewRedisLogTypeCache(addr, password string, db int, opts ...RedisLogTypeCacheOption) (*RedisLogTypeCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisLogTypeCache{
		client:     client,
		ownsClient: true,
		ttl:        defaultLogTypeTTL,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache, nil
}

// NewRedisLogTypeCacheWithClient creates a cache over an existing Redis
// client. The caller retains ownership of the client.
func NewRedisLogTypeCacheWithClient(client *redis.Client, opts ...RedisLogTypeCacheOption) *RedisLogTypeCache {
	cache := &RedisLogTypeCache{
		client:     client,
		ownsClient: false,
		ttl:        defaultLogTypeTTL,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

// GetTypes returns the cached type list. The second return value reports
// whether the cache held an entry.
func (c *RedisLogTypeCache) GetTypes(ctx context.Context) ([]inventory.InventoryLogType, bool, error) {
	data, err := c.client.Get(ctx, logTypeCacheKey).Bytes()
	if err == redis.Nil {
		c.logger.Debug("Cache miss for inventory log types")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get log types from cache: %w", err)
	}

	var types []inventory.InventoryLogType
	if err := json.Unmarshal(data, &types); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached log types: %w", err)
	}
	return types, true, nil
}

// SetTypes stores the type list with the configured TTL
func (c *RedisLogTypeCache) SetTypes(ctx context.Context, types []inventory.InventoryLogType) error {
	data, err := json.Marshal(types)
	if err != nil {
		return fmt.Errorf("failed to marshal log types: %w", err)
	}
	if err := c.client.Set(ctx, logTypeCacheKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache log types: %w", err)
	}
	return nil
}

// Close closes the Redis client if this cache created it
func (c *RedisLogTypeCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}
