package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// pageKeyPrefix namespaces cached rendered pages in Redis.
const pageKeyPrefix = "cache:page:"

// PageCacheRepo caches rendered page bodies in Redis, keyed by request
// path. Services invalidate the pages that display an entity after every
// write so students never see stale lists.
type PageCacheRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewPageCacheRepo creates a new PageCacheRepo. ttl bounds how long a page
// may be served without re-rendering even if invalidation is missed.
func NewPageCacheRepo(client redis.UniversalClient, ttl time.Duration) *PageCacheRepo {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &PageCacheRepo{client: client, ttl: ttl}
}

// PageKey maps a request path to its cache key.
func PageKey(path string) string {
	return pageKeyPrefix + path
}

// SetPage stores a rendered page body for a path.
func (r *PageCacheRepo) SetPage(ctx context.Context, path string, body []byte) error {
	if path == "" {
		return errors.New("path cannot be empty")
	}
	return r.client.Set(ctx, PageKey(path), body, r.ttl).Err()
}

// GetPage retrieves a cached page body, or nil when the path is not cached.
func (r *PageCacheRepo) GetPage(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("path cannot be empty")
	}
	result, err := r.client.Get(ctx, PageKey(path)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return []byte(result), nil
}

// InvalidatePage drops one cached page. Returns whether a key was removed.
func (r *PageCacheRepo) InvalidatePage(ctx context.Context, path string) (bool, error) {
	if path == "" {
		return false, errors.New("path cannot be empty")
	}
	result, err := r.client.Del(ctx, PageKey(path)).Result()
	if err != nil {
		return false, fmt.Errorf("redis del: %w", err)
	}
	return result > 0, nil
}

// InvalidatePages drops several cached pages in one round trip.
func (r *PageCacheRepo) InvalidatePages(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		keys = append(keys, PageKey(p))
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Health checks the health of the Redis connection.
func (r *PageCacheRepo) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// RedisOptions holds connection settings for the cache client.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient creates a new Redis client with the given options.
func NewRedisClient(opts RedisOptions) *redis.Client {
	addr := opts.Addr
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
}
