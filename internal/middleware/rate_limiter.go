package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

const visitorIdleTTL = 3 * time.Minute

// RateLimiter enforces a per-client token bucket, keyed by remote address.
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    b,
	}

	go rl.evictIdleVisitors()

	return rl
}

// evictIdleVisitors drops buckets that have been quiet long enough to be
// refilled anyway, keeping the map bounded.
func (rl *RateLimiter) evictIdleVisitors() {
	for {
		time.Sleep(time.Minute)

		rl.mu.Lock()
		for addr, v := range rl.visitors {
			if time.Since(v.lastSeen) > visitorIdleTTL {
				delete(rl.visitors, addr)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) limiterFor(addr string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[addr]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[addr] = v
	}
	v.lastSeen = time.Now()

	return v.limiter
}

// Middleware rejects requests over the per-client budget with 429.
func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.limiterFor(r.RemoteAddr).Allow() {
				w.WriteHeader(http.StatusTooManyRequests)
				render.JSON(w, r, map[string]interface{}{
					"error":   ErrorCodeRateLimitExceeded,
					"message": ErrorMessageRateLimitExceeded,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
