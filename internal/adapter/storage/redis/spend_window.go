package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SpendWindowStore accumulates per-caller spend totals backed by Redis.
// It uses fixed windows keyed by time / windowDuration, the same discrete
// window scheme as RateLimitStore; the guardrail's "rolling window"
// contract is satisfied at window-boundary granularity.
type SpendWindowStore struct {
	client *goredis.Client
	prefix string
}

// NewSpendWindowStore creates a new Redis-backed spend window store.
func NewSpendWindowStore(client *goredis.Client) *SpendWindowStore {
	return &SpendWindowStore{
		client: client,
		prefix: "spendwindow:",
	}
}

func (s *SpendWindowStore) key(caller string, window time.Duration, now time.Time) string {
	// A non-positive window collapses everything into one bucket instead
	// of dividing by zero.
	var windowID int64
	if window > 0 {
		windowID = now.Unix() / int64(window.Seconds())
	}
	return fmt.Sprintf("%s%s:%d", s.prefix, caller, windowID)
}

// Current returns the cumulative spend recorded for the caller's active
// window. Missing key means zero. Read-only: guardrail denials must stay
// side-effect free.
func (s *SpendWindowStore) Current(ctx context.Context, caller string, window time.Duration) (uint64, error) {
	val, err := s.client.Get(ctx, s.key(caller, window, time.Now())).Uint64()
	if err != nil {
		if err == goredis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("redis spend window get: %w", err)
	}
	return val, nil
}

// Add records a completed spend and returns the new window total.
func (s *SpendWindowStore) Add(ctx context.Context, caller string, amount uint64, window time.Duration) (uint64, error) {
	key := s.key(caller, window, time.Now())

	total, err := s.client.IncrBy(ctx, key, int64(amount)).Result()
	if err != nil {
		return 0, fmt.Errorf("redis spend window incrby: %w", err)
	}

	// Set expiry only when the key was created by this increment.
	if total == int64(amount) && window > 0 {
		s.client.Expire(ctx, key, window+time.Second) // +1s safety margin
	}

	return uint64(total), nil
}
