// Package redis provides Redis backed request throttling.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/nepersonaj/internal/domain"
	"github.com/davidbz/nepersonaj/internal/observability"
)

const keyPrefix = "ratelimit:"

// Config contains Redis connection and limiter settings.
// An empty Addr disables rate limiting.
type Config struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB"            envDefault:"0"`
	Limit    int64         `env:"CONTACT_RATE_LIMIT"  envDefault:"5"`
	Window   time.Duration `env:"CONTACT_RATE_WINDOW" envDefault:"10m"`
}

// NewClient creates a Redis client and verifies the connection.
func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// FixedWindowLimiter implements domain.RateLimiter with one counter per key
// and window.
type FixedWindowLimiter struct {
	client *redis.Client
	scope  string
	limit  int64
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit actions per window.
func NewFixedWindowLimiter(client *redis.Client, scope string, limit int64, window time.Duration) (*FixedWindowLimiter, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}
	if window <= 0 {
		return nil, errors.New("window must be positive")
	}

	return &FixedWindowLimiter{
		client: client,
		scope:  scope,
		limit:  limit,
		window: window,
	}, nil
}

// Allow increments the counter of key and reports whether it is within the limit.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := WindowKey(l.scope, key, l.window, time.Now())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to update rate limit counter: %w", err)
	}

	count := incr.Val()
	if count > l.limit {
		observability.FromContext(ctx).Info("rate limit exceeded",
			observability.String("scope", l.scope),
			observability.Int64("count", count))
		return false, nil
	}

	return true, nil
}

// WindowKey names the counter of key for the window containing now.
func WindowKey(scope, key string, window time.Duration, now time.Time) string {
	bucket := now.UnixNano() / int64(window)
	return fmt.Sprintf("%s%s:%s:%d", keyPrefix, scope, key, bucket)
}

var _ domain.RateLimiter = (*FixedWindowLimiter)(nil)
