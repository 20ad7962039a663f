package lock

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedis_Integration requires a running Redis at PKGVAULT_TEST_REDIS_ADDR.
func TestRedis_Integration(t *testing.T) {
	addr := os.Getenv("PKGVAULT_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("Skipping Redis integration test: PKGVAULT_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	r, err := NewRedis(ctx, RedisConfig{Addr: addr, TTL: 5 * time.Second}, zerowrap.Default())
	require.NoError(t, err)
	defer r.Close()

	key := "test:" + uuid.NewString()
	unlock, err := r.Lock(ctx, key)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = r.Lock(waitCtx, key)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()

	unlock2, err := r.Lock(ctx, key)
	require.NoError(t, err)
	unlock2()
}

func TestNewRedis_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedis(ctx, RedisConfig{Addr: "127.0.0.1:1"}, zerowrap.Default())

	assert.Error(t, err)
}
