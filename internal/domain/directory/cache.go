package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const DefaultTTL = 10 * time.Minute

// Resolver is the lookup surface both PGResolver and RedisCache satisfy.
type Resolver interface {
	BuildingName(ctx context.Context, id string) (string, error)
	DepartmentName(ctx context.Context, id string) (string, error)
	EmployeeName(ctx context.Context, id string) (string, error)
}

// kv is the slice of the redis client the cache needs.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisCache is a read-through cache in front of another Resolver. Redis
// failures degrade to a direct lookup and are never returned to the caller.
type RedisCache struct {
	rdb    kv
	next   Resolver
	ttl    time.Duration
	logger zerolog.Logger
}

func NewRedisCache(rdb kv, next Resolver, ttl time.Duration, logger zerolog.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{
		rdb:    rdb,
		next:   next,
		ttl:    ttl,
		logger: logger.With().Str("component", "directory.cache").Logger(),
	}
}

func (c *RedisCache) through(ctx context.Context, kind, id string, load func(context.Context, string) (string, error)) (string, error) {
	key := fmt.Sprintf("directory:%s:%s", kind, id)
	name, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}

	name, err = load(ctx, id)
	if err != nil {
		return "", err
	}
	// Unknown ids resolve to "" and are retried on the next lookup.
	if name == "" {
		return "", nil
	}
	if err := c.rdb.Set(ctx, key, name, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return name, nil
}

func (c *RedisCache) BuildingName(ctx context.Context, id string) (string, error) {
	return c.through(ctx, "building", id, c.next.BuildingName)
}

func (c *RedisCache) DepartmentName(ctx context.Context, id string) (string, error) {
	return c.through(ctx, "department", id, c.next.DepartmentName)
}

func (c *RedisCache) EmployeeName(ctx context.Context, id string) (string, error) {
	return c.through(ctx, "employee", id, c.next.EmployeeName)
}

// NewRedisClient connects to url and pings it once.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
