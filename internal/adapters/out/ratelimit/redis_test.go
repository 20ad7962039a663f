package ratelimit

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client, 1, 1, testLogger())

	assert.True(t, store.Allow(context.Background(), "ip:1.2.3.4"))
}

func TestRedisStore_Window(t *testing.T) {
	addr := os.Getenv("PKGVAULT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("PKGVAULT_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client, 1, 3, testLogger())
	ctx := context.Background()
	key := "test:" + uuid.NewString()

	allowed := 0
	for i := 0; i < 10; i++ {
		if store.Allow(ctx, key) {
			allowed++
		}
	}

	// The loop may straddle a window boundary.
	assert.GreaterOrEqual(t, allowed, 3)
	assert.LessOrEqual(t, allowed, 6)
}
