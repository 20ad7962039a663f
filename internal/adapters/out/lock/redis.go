package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bnema/pkgvault/internal/boundaries/out"
)

// Ensure Redis implements out.Locker.
var _ out.Locker = (*Redis)(nil)

// redisUnlockScript deletes the lock only if it still carries our token.
// KEYS[1] = lock key
// ARGV[1] = token
var redisUnlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisConfig holds the connection and lock settings.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Redis is a distributed keyed lock (SET NX PX with token-checked release).
// The TTL bounds how long a crashed holder blocks other instances.
type Redis struct {
	client redis.UniversalClient
	ttl    time.Duration
	retry  time.Duration
	prefix string
	log    zerowrap.Logger
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, cfg RedisConfig, log zerowrap.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	log.Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "redis").
		Str("addr", cfg.Addr).
		Msg("distributed lock initialized")

	return NewRedisWithClient(client, cfg.TTL, log), nil
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client redis.UniversalClient, ttl time.Duration, log zerowrap.Logger) *Redis {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Redis{
		client: client,
		ttl:    ttl,
		retry:  25 * time.Millisecond,
		prefix: "pkgvault:lock:",
		log:    log,
	}
}

// Close closes the client.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Lock polls SET NX until the key is acquired or ctx is done.
func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	lockKey := r.prefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, lockKey, token, r.ttl).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, fmt.Errorf("redis lock %s: %w", key, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// Release with a fresh context so a cancelled request still unlocks.
			rctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := redisUnlockScript.Run(rctx, r.client, []string{lockKey}, token).Err(); err != nil && !errors.Is(err, redis.Nil) {
				r.log.Warn().
					Err(err).
					Str(zerowrap.FieldLayer, "adapter").
					Str(zerowrap.FieldAdapter, "redis").
					Str("key", key).
					Msg("failed to release lock")
			}
		})
	}, nil
}
