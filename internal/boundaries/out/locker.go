package out

import "context"

// Locker serializes find-or-create sequences keyed by name.
// Implementations may be process-local or distributed (Redis).
type Locker interface {
	// Lock blocks until key is held or ctx is done. The returned function
	// releases the lock and is safe to call once.
	Lock(ctx context.Context, key string) (func(), error)
}
