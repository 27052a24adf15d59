// Package redis holds the Redis-backed guardrail spend windows and the admin
// API rate limiter.
package redis

import (
	"context"
	"fmt"

	"custody-treasury/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// NewClient opens the Redis connection shared by the spend-window and
// rate-limit stores. Guardrail accounting sits on the send path, so retries
// are kept short; callers degrade explicitly when Redis is down rather than
// blocking a transfer.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:       cfg.Addr(),
		Password:   cfg.Password,
		DB:         cfg.DB,
		MaxRetries: 2,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("guardrail store connected")

	return client, nil
}
