package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
	"golang.org/x/sync/singleflight"
)

// Cache is a TTL cache of values of a single type.
type Cache[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration) bool
	Delete(ctx context.Context, key string)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (V, error)) (V, error)
}

type CacheConfig struct {
	// MaxCost is the number of entries kept, every entry costs one.
	MaxCost     int64
	NumCounters int64
	BufferItems int64
}

func DefaultConfig() *CacheConfig {
	return &CacheConfig{
		MaxCost:     10_000,
		NumCounters: 100_000,
		BufferItems: 64,
	}
}

var _ Cache[string] = (*RistrettoCache[string])(nil)

// RistrettoCache keeps entries in process memory.
type RistrettoCache[V any] struct {
	store       *ristretto.Cache
	singleGroup singleflight.Group
}

func New[V any](config *CacheConfig) (*RistrettoCache[V], error) {
	if config == nil {
		config = DefaultConfig()
	}

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        config.NumCounters,
		MaxCost:            config.MaxCost,
		BufferItems:        config.BufferItems,
		// entries are counted, not sized
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating ristretto cache: %w", err)
	}

	return &RistrettoCache[V]{
		store: store,
	}, nil
}

func (c *RistrettoCache[V]) Get(ctx context.Context, key string) (V, bool) {
	var zero V
	if ctx.Err() != nil {
		return zero, false
	}

	raw, found := c.store.Get(key)
	if !found {
		return zero, false
	}
	value, ok := raw.(V)
	return value, ok
}

// Set stores value and waits until it is visible to readers.
func (c *RistrettoCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}

	ok := c.store.SetWithTTL(key, value, 1, ttl)
	c.store.Wait()
	return ok
}

func (c *RistrettoCache[V]) Delete(ctx context.Context, key string) {
	c.store.Del(key)
}

// GetOrSet loads a missing key once even when many callers ask for it at
// the same time. Loader errors are returned and never cached.
func (c *RistrettoCache[V]) GetOrSet(ctx context.Context, key string, ttl time.Duration, loader func() (V, error)) (V, error) {
	if value, found := c.Get(ctx, key); found {
		return value, nil
	}

	result, err, _ := c.singleGroup.Do(key, func() (any, error) {
		if value, found := c.Get(ctx, key); found {
			return value, nil
		}

		value, err := loader()
		if err != nil {
			return nil, err
		}

		c.Set(ctx, key, value, ttl)
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return result.(V), nil
}

func (c *RistrettoCache[V]) Close() {
	c.store.Close()
}
