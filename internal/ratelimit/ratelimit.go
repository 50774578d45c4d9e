package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrInvalidLimit error = errors.New("limit and window must be positive")

var TimeNow = time.Now

// RedisLimiter is a fixed-window counter shared by every instance that talks to the same
// Redis. Each key may be allowed limit times per window.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, prefix string, limit int, window time.Duration) (*RedisLimiter, error) {
	if limit <= 0 || window < time.Second {
		return nil, ErrInvalidLimit
	}

	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
	}, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.bucketKey(key, TimeNow())

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, bucket)
	pipe.Expire(ctx, bucket, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis pipeline: %w", err)
	}

	count, err := incr.Result()
	if err != nil {
		return false, fmt.Errorf("redis incr: %w", err)
	}

	return count <= l.limit, nil
}

// bucketKey names the counter for key in the window containing now.
func (l *RedisLimiter) bucketKey(key string, now time.Time) string {
	window := now.Unix() / int64(l.window/time.Second)
	return l.prefix + ":" + key + ":" + strconv.FormatInt(window, 10)
}
