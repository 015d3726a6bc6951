package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/constants"
	commonerrors "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/errors"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/httpmetrics"
	"github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/observability/metrics"
)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	clientIP *ClientIPResolver
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = constants.RateLimitRequestsPerSecond
	}
	if burst <= 0 {
		burst = constants.RateLimitBurst
	}
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// WithClientIPResolver keys buckets by the resolved client address instead
// of the connected peer.
func (rl *RateLimiter) WithClientIPResolver(res *ClientIPResolver) *RateLimiter {
	rl.clientIP = res
	return rl
}

// StartCleanup drops idle buckets every interval until ctx is cancelled.
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = constants.RateLimitCleanupInterval
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.cleanup()
			}
		}
	}()
}

// A bucket that has refilled completely carries no state worth keeping.
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, limiter := range rl.limiters {
		if limiter.Tokens() >= float64(rl.burst) {
			delete(rl.limiters, key)
		}
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.Allow(rl.clientIP.ClientIP(r)) {
			metrics.RateLimitBlocked.WithLabelValues(httpmetrics.NormalizePath(r.URL.Path)).Inc()
			w.Header().Set("Retry-After", "1")
			WriteError(w, commonerrors.ErrRateLimited.HTTPStatus(), commonerrors.ErrRateLimited.Message())
			return
		}
		next.ServeHTTP(w, r)
	})
}
