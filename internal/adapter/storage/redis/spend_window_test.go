package redis_test

import (
	"context"
	"testing"
	"time"

	"custody-treasury/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpendWindowStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewSpendWindowStore(client)
	ctx := context.Background()

	t.Run("empty window reads zero", func(t *testing.T) {
		total, err := store.Current(ctx, "scheduler", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), total)
	})

	t.Run("add accumulates", func(t *testing.T) {
		total, err := store.Add(ctx, "scheduler", 100_000, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, uint64(100_000), total)

		total, err = store.Add(ctx, "scheduler", 50_000, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, uint64(150_000), total)

		current, err := store.Current(ctx, "scheduler", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, uint64(150_000), current)
	})

	t.Run("current does not mutate", func(t *testing.T) {
		before, err := store.Current(ctx, "scheduler", time.Hour)
		require.NoError(t, err)
		after, err := store.Current(ctx, "scheduler", time.Hour)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("callers are independent", func(t *testing.T) {
		total, err := store.Add(ctx, "revenue", 7_000, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, uint64(7_000), total)
	})

	t.Run("zero window duration accumulates without expiry", func(t *testing.T) {
		total, err := store.Add(ctx, "unwindowed", 100, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), total)

		total, err = store.Add(ctx, "unwindowed", 25, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(125), total)

		current, err := store.Current(ctx, "unwindowed", 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(125), current)
	})

	t.Run("window expires", func(t *testing.T) {
		_, err := store.Add(ctx, "expiring", 500, 2*time.Second)
		require.NoError(t, err)

		mr.FastForward(5 * time.Second)

		total, err := store.Current(ctx, "expiring", 2*time.Second)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), total)
	})
}
