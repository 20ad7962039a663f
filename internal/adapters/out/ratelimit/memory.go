// Package ratelimit provides the token budgets enforced on the HTTP API.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/time/rate"

	"github.com/bnema/pkgvault/internal/boundaries/out"
)

var _ out.RateLimiter = (*MemoryStore)(nil)

// idleTTL is how long a key may go unused before its bucket is dropped.
const idleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore keeps one token bucket per key in process memory. Buckets
// idle for longer than idleTTL are evicted so per-client keys do not
// accumulate.
type MemoryStore struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
	log       zerowrap.Logger
}

// NewMemoryStore creates a limiter refilling rps tokens per second up to burst.
func NewMemoryStore(rps float64, burst int, log zerowrap.Logger) *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
		log:     log,
	}
}

// Allow reports whether one request for key fits the budget.
func (s *MemoryStore) Allow(ctx context.Context, key string) bool {
	return s.AllowN(ctx, key, 1)
}

// AllowN reports whether n requests for key fit the budget.
func (s *MemoryStore) AllowN(_ context.Context, key string, n int) bool {
	now := s.now()
	return s.take(key, now).AllowN(now, n)
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.buckets)
}

func (s *MemoryStore) take(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) >= idleTTL {
		s.sweep(now)
	}

	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// sweep must be called with s.mu held.
func (s *MemoryStore) sweep(now time.Time) {
	evicted := 0
	for key, b := range s.buckets {
		if now.Sub(b.lastSeen) >= idleTTL {
			delete(s.buckets, key)
			evicted++
		}
	}
	s.lastSweep = now
	if evicted > 0 {
		s.log.Debug().
			Str(zerowrap.FieldLayer, "adapter").
			Str(zerowrap.FieldAdapter, "ratelimit").
			Int("evicted", evicted).
			Int("remaining", len(s.buckets)).
			Msg("evicted idle rate limit buckets")
	}
}
