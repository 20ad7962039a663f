package ratelimit

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/redis/go-redis/v9"

	"github.com/bnema/pkgvault/internal/boundaries/out"
)

// Ensure RedisStore implements out.RateLimiter.
var _ out.RateLimiter = (*RedisStore)(nil)

// redisWindowScript adds ARGV[1] to the window counter and starts the window
// expiry on first use. It returns the new count.
// KEYS[1] = window key
// ARGV[1] = n
// ARGV[2] = window length in milliseconds
var redisWindowScript = redis.NewScript(`
local count = redis.call("INCRBY", KEYS[1], ARGV[1])
if count == tonumber(ARGV[1]) then
    redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return count
`)

// RedisStore is a fixed-window limiter shared by every API instance.
// The window is one second and admits max(burst, rps) requests.
type RedisStore struct {
	client redis.UniversalClient
	limit  int64
	window time.Duration
	prefix string
	log    zerowrap.Logger
}

// NewRedisStore creates a limiter on an existing client.
func NewRedisStore(client redis.UniversalClient, rps float64, burst int, log zerowrap.Logger) *RedisStore {
	limit := int64(math.Ceil(rps))
	if int64(burst) > limit {
		limit = int64(burst)
	}
	if limit < 1 {
		limit = 1
	}
	return &RedisStore{
		client: client,
		limit:  limit,
		window: time.Second,
		prefix: "pkgvault:ratelimit:",
		log:    log,
	}
}

// Allow checks if a request identified by key is allowed.
func (s *RedisStore) Allow(ctx context.Context, key string) bool {
	return s.AllowN(ctx, key, 1)
}

// AllowN checks if n requests identified by key are allowed. Redis errors
// fail open so an unavailable cache does not take the API down.
func (s *RedisStore) AllowN(ctx context.Context, key string, n int) bool {
	slot := time.Now().UnixMilli() / s.window.Milliseconds()
	windowKey := s.prefix + key + ":" + strconv.FormatInt(slot, 10)

	count, err := redisWindowScript.Run(ctx, s.client, []string{windowKey}, n, s.window.Milliseconds()).Int64()
	if err != nil {
		s.log.Warn().
			Err(err).
			Str(zerowrap.FieldLayer, "adapter").
			Str(zerowrap.FieldAdapter, "redis").
			Str("key", key).
			Msg("rate limit check failed, allowing request")
		return true
	}
	return count <= s.limit
}
