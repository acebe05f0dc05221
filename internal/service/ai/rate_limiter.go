package ai

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the fallback outbound requests-per-minute cap.
const DefaultRateLimit = 10

// RateLimiter paces outbound calls to the generation backend so a burst of
// admitted requests cannot exhaust the backend quota.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	perMin  int
}

func NewRateLimiter(perMin int) *RateLimiter {
	r := &RateLimiter{}
	r.SetLimit(perMin)
	return r
}

// SetLimit replaces the requests-per-minute cap. Non-positive values fall
// back to DefaultRateLimit.
func (r *RateLimiter) SetLimit(perMin int) {
	if perMin <= 0 {
		perMin = DefaultRateLimit
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.perMin = perMin
	r.limiter = rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin)
}

func (r *RateLimiter) GetLimit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.perMin
}

// Wait blocks until a slot is available or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	limiter := r.limiter
	r.mu.Unlock()
	return limiter.Wait(ctx)
}
