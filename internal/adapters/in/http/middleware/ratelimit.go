package middleware

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/bnema/zerowrap"

	"github.com/bnema/pkgvault/internal/adapters/dto"
	"github.com/bnema/pkgvault/internal/boundaries/out"
)

// RateLimit rejects requests over the global or per-client budget with 429.
// A nil limiter disables the corresponding check.
func RateLimit(global, perIP out.RateLimiter, trustedNets []*net.IPNet, log zerowrap.Logger) func(http.Handler) http.Handler {
	if global == nil && perIP == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if global != nil && !global.Allow(ctx, "global") {
				rejectRateLimited(w, r, log, "global")
				return
			}
			if perIP != nil {
				ip := GetClientIP(r, trustedNets)
				if !perIP.Allow(ctx, "ip:"+ip) {
					rejectRateLimited(w, r, log, "ip")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func rejectRateLimited(w http.ResponseWriter, r *http.Request, log zerowrap.Logger, scope string) {
	log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "http").
		Str(zerowrap.FieldPath, r.URL.Path).
		Str("scope", scope).
		Msg("rate limit exceeded")

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:     "rate limit exceeded",
		Code:      "RATE_LIMITED",
		Retryable: true,
	})
}
