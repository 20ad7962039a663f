package ratelimit

import (
	"fmt"

	"github.com/bnema/zerowrap"
	"github.com/redis/go-redis/v9"

	"github.com/bnema/pkgvault/internal/boundaries/out"
)

// NewStore creates a RateLimiter based on the configured backend. The redis
// backend requires client.
func NewStore(backend string, rps float64, burst int, client redis.UniversalClient, log zerowrap.Logger) (out.RateLimiter, error) {
	switch backend {
	case "memory", "":
		return NewMemoryStore(rps, burst, log), nil
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("redis rate limit backend requires a redis connection")
		}
		return NewRedisStore(client, rps, burst, log), nil
	default:
		return nil, fmt.Errorf("unknown rate limit backend: %s", backend)
	}
}
