package out

import "context"

// RateLimiter budgets API requests. The HTTP layer holds one limiter keyed
// "global" for the whole server and one keyed "ip:<client address>" for each
// caller, and answers 429 once either budget is spent. Backends are the
// in-process token buckets or a Redis window counter shared across replicas,
// which lets requests through when Redis is unreachable.
type RateLimiter interface {
	// Allow consumes one request from the budget of key and reports whether
	// the request may proceed.
	Allow(ctx context.Context, key string) bool

	// AllowN charges n requests to the budget of key at once.
	AllowN(ctx context.Context, key string, n int) bool
}
