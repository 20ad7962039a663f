package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
)

func testLogger() zerowrap.Logger {
	return zerowrap.Default()
}

// frozenStore returns a store whose clock only moves when advance is called.
func frozenStore(rps float64, burst int) (*MemoryStore, func(time.Duration)) {
	store := NewMemoryStore(rps, burst, testLogger())
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	return store, func(d time.Duration) { now = now.Add(d) }
}

func TestMemoryStore_BurstThenRefill(t *testing.T) {
	store, advance := frozenStore(2, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, store.Allow(ctx, "ip:10.0.0.1"), "request %d", i)
	}
	assert.False(t, store.Allow(ctx, "ip:10.0.0.1"))

	advance(500 * time.Millisecond)
	assert.True(t, store.Allow(ctx, "ip:10.0.0.1"))
	assert.False(t, store.Allow(ctx, "ip:10.0.0.1"))
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	store, _ := frozenStore(1, 1)
	ctx := context.Background()

	assert.True(t, store.Allow(ctx, "ip:10.0.0.1"))
	assert.False(t, store.Allow(ctx, "ip:10.0.0.1"))
	assert.True(t, store.Allow(ctx, "ip:10.0.0.2"))
	assert.True(t, store.Allow(ctx, "global"))
	assert.Equal(t, 3, store.Len())
}

func TestMemoryStore_AllowN(t *testing.T) {
	store, _ := frozenStore(1, 5)
	ctx := context.Background()

	assert.True(t, store.AllowN(ctx, "global", 4))
	assert.False(t, store.AllowN(ctx, "global", 2))
	assert.True(t, store.AllowN(ctx, "global", 1))
	assert.False(t, store.AllowN(ctx, "other", 6))
}

func TestMemoryStore_EvictsIdleKeys(t *testing.T) {
	store, advance := frozenStore(1, 1)
	ctx := context.Background()

	store.Allow(ctx, "ip:10.0.0.1")
	store.Allow(ctx, "ip:10.0.0.2")
	assert.Equal(t, 2, store.Len())

	advance(idleTTL / 2)
	store.Allow(ctx, "ip:10.0.0.2")

	advance(idleTTL/2 + time.Second)
	store.Allow(ctx, "ip:10.0.0.3")

	assert.Equal(t, 2, store.Len())
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore(0.001, 50, testLogger())
	ctx := context.Background()

	var allowed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if store.Allow(ctx, "global") {
				allowed.Add(1)
			}
			store.Allow(ctx, fmt.Sprintf("ip:10.0.0.%d", i%4))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(50), allowed.Load())
	assert.Equal(t, 5, store.Len())
}
