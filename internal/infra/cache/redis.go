package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const _pingTimeout = 5 * time.Second

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// Prefix namespaces every key written by this cache.
	Prefix string
}

var _ Cache[string] = (*RedisCache[string])(nil)

// RedisCache stores JSON encoded values in redis.
type RedisCache[V any] struct {
	client CacheClient
	prefix string
}

func NewRedisCache[V any](config RedisConfig) (*RedisCache[V], error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), _pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", config.Addr, err)
	}

	slog.Info("redis cache initialized", slog.String("addr", config.Addr), slog.Int("db", config.DB))
	return NewRedisCacheWithClient[V](client, config.Prefix), nil
}

func NewRedisCacheWithClient[V any](client CacheClient, prefix string) *RedisCache[V] {
	return &RedisCache[V]{
		client: client,
		prefix: prefix,
	}
}

func (c *RedisCache[V]) Get(ctx context.Context, key string) (V, bool) {
	var value V
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Error("failed to get value from redis cache", slog.String("key", key), slog.String("error", err.Error()))
		}
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		slog.Error("failed to decode value from redis cache", slog.String("key", key), slog.String("error", err.Error()))
		var zero V
		return zero, false
	}

	return value, true
}

func (c *RedisCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) bool {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Error("failed to encode value for redis cache", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}

	if err := c.client.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		slog.Error("failed to set value in redis cache", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}

	return true
}

func (c *RedisCache[V]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.prefix+key).Err(); err != nil {
		slog.Error("failed to delete value from redis cache", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (c *RedisCache[V]) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (V, error)) (V, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	value, err := loader()
	if err != nil {
		var zero V
		return zero, err
	}

	c.Set(ctx, key, value, ttl)
	return value, nil
}
