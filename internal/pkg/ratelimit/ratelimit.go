// Package ratelimit counts failed logins per client in Redis so every API
// instance sees the same budget.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter interface {
	// Allow reports whether key still has attempts left in the window.
	Allow(ctx context.Context, key string) (bool, error)
	// Fail records one failed attempt for key.
	Fail(ctx context.Context, key string) error
	// Reset forgets key after a successful attempt.
	Reset(ctx context.Context, key string) error
}

type RedisLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
	prefix string
}

func NewRedis(url string, max int, window time.Duration) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return NewRedisWithClient(redis.NewClient(opts), max, window), nil
}

func NewRedisWithClient(rdb *redis.Client, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, max: max, window: window, prefix: "rentalhub:login:"}
}

func (l *RedisLimiter) key(k string) string { return l.prefix + k }

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := l.rdb.Get(ctx, l.key(key)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return n < l.max, nil
}

// Fail increments the counter; the window starts at the first failure.
func (l *RedisLimiter) Fail(ctx context.Context, key string) error {
	k := l.key(key)
	pipe := l.rdb.TxPipeline()
	pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, l.window)
	_, err := pipe.Exec(ctx)
	return err
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	return l.rdb.Del(ctx, l.key(key)).Err()
}

func (l *RedisLimiter) Ping(ctx context.Context) error {
	return l.rdb.Ping(ctx).Err()
}

func (l *RedisLimiter) Close() error {
	return l.rdb.Close()
}

// Disabled never throttles. It is used when no Redis is configured.
type Disabled struct{}

func (Disabled) Allow(context.Context, string) (bool, error) { return true, nil }
func (Disabled) Fail(context.Context, string) error { return nil }
func (Disabled) Reset(context.Context, string) error { return nil }
