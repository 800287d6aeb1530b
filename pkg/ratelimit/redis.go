package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter shares one sliding window across instances using a sorted
// set per user, scored by request time. Any Redis failure surfaces as an
// error so the caller denies the request; an unreachable store must not
// open the gate.
type RedisLimiter struct {
	client      *redis.Client
	maxRequests int
	window      time.Duration
	keyPrefix   string
}

// NewRedis builds a Redis-backed limiter against addr.
func NewRedis(addr string, maxRequests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: redis.NewClient(&redis.Options{
			Addr:         addr,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 2 * time.Second,
		}),
		maxRequests: maxRequests,
		window:      window,
		keyPrefix:   "promptward:ratelimit:",
	}
}

// Allow implements Limiter. Expired entries are trimmed, the window is
// counted, and the request is recorded only when it is admitted.
func (l *RedisLimiter) Allow(ctx context.Context, userID string) (bool, error) {
	key := l.keyPrefix + userID
	now := time.Now()
	cutoff := now.Add(-l.window)

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", cutoff.UnixNano()))
	countCmd := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit store: %w", err)
	}

	if countCmd.Val() >= int64(l.maxRequests) {
		return false, nil
	}

	record := l.client.TxPipeline()
	record.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	record.Expire(ctx, key, l.window)
	if _, err := record.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit store: %w", err)
	}
	return true, nil
}

// Close releases the client connection pool.
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}
