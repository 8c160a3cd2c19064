package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ThrottleRepository keeps fixed-window attempt counters in Redis. A nil
// client turns every call into a no-op.
type ThrottleRepository struct {
	client *redis.Client
	prefix string
}

// NewThrottleRepository constructs a throttle repository.
func NewThrottleRepository(client *redis.Client, prefix string) *ThrottleRepository {
	if prefix == "" {
		prefix = "throttle:"
	}
	return &ThrottleRepository{client: client, prefix: prefix}
}

// Increment bumps the counter for key. INCR and TTL run in one MULTI/EXEC and
// any counter left without an expiry gets the window applied, so a failed
// EXPIRE is retried on the next attempt.
func (r *ThrottleRepository) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	if r.client == nil {
		return 0, nil
	}
	full := r.prefix + key

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	if _, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, full)
		ttl = pipe.TTL(ctx, full)
		return nil
	}); err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", full, err)
	}

	count := incr.Val()
	if ttl.Val() < 0 {
		if err := r.client.Expire(ctx, full, window).Err(); err != nil {
			return count, fmt.Errorf("redis expire %s: %w", full, err)
		}
	}
	return count, nil
}

// Reset clears the counter for key.
func (r *ThrottleRepository) Reset(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	full := r.prefix + key
	if err := r.client.Del(ctx, full).Err(); err != nil {
		return fmt.Errorf("redis delete %s: %w", full, err)
	}
	return nil
}

// Enabled reports whether a Redis client is attached.
func (r *ThrottleRepository) Enabled() bool {
	return r != nil && r.client != nil
}

// Close releases the underlying Redis connection if present.
func (r *ThrottleRepository) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}
