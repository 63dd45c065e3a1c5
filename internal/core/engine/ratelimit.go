// Package engine holds the request-gating machinery shared by live sources.
package engine

import (
	"context"
	"time"

	"github.com/querylens/querylens/internal/core"
)

// RateLimit represents a rate limit window.
type RateLimit struct {
	RequestsPerWindow int
	WindowDuration    time.Duration
}

// DefaultStockLimit matches the Alpha Vantage free tier.
var DefaultStockLimit = RateLimit{RequestsPerWindow: 5, WindowDuration: time.Minute}

// RateLimitStore stores rate limit state per endpoint.
type RateLimitStore interface {
	GetRateLimit(ctx context.Context, endpoint string) (*core.RateLimitState, error)
	UpdateRateLimit(ctx context.Context, endpoint string, state *core.RateLimitState) error
}

// RateLimiter enforces a trailing-window request budget per endpoint. Only
// sent requests count against the window: callers check Allow before a send
// and Record after deciding to send, so a locally blocked attempt never
// increments the counter.
type RateLimiter struct {
	Store RateLimitStore
	Limit RateLimit
	Clock func() time.Time
}

// Allow checks whether a request may be sent now and, if not, how long until
// the window reopens. A lapsed window is reset before counting.
func (r *RateLimiter) Allow(ctx context.Context, endpoint string) (bool, time.Duration, error) {
	if r == nil || r.Store == nil {
		return true, 0, nil
	}

	state, err := r.Store.GetRateLimit(ctx, endpoint)
	if err != nil {
		return true, 0, err
	}
	if state == nil {
		state = &core.RateLimitState{WindowStart: r.now()}
	}

	limit := r.limit()
	windowEnd := state.WindowStart.Add(limit.WindowDuration)
	if !r.now().Before(windowEnd) {
		state.RequestCount = 0
		state.WindowStart = r.now()
		if err := r.Store.UpdateRateLimit(ctx, endpoint, state); err != nil {
			return true, 0, err
		}
	}

	if state.RequestCount >= limit.RequestsPerWindow {
		return false, windowEnd.Sub(r.now()), nil
	}

	return true, 0, nil
}

// Record counts one sent request against the current window.
func (r *RateLimiter) Record(ctx context.Context, endpoint string) error {
	if r == nil || r.Store == nil {
		return nil
	}

	state, err := r.Store.GetRateLimit(ctx, endpoint)
	if err != nil {
		return err
	}
	if state == nil {
		state = &core.RateLimitState{WindowStart: r.now()}
	}

	state.RequestCount++
	if state.WindowStart.IsZero() {
		state.WindowStart = r.now()
	}

	return r.Store.UpdateRateLimit(ctx, endpoint, state)
}

func (r *RateLimiter) limit() RateLimit {
	if r == nil || r.Limit.RequestsPerWindow <= 0 || r.Limit.WindowDuration <= 0 {
		return DefaultStockLimit
	}
	return r.Limit
}

func (r *RateLimiter) now() time.Time {
	if r != nil && r.Clock != nil {
		return r.Clock()
	}
	return time.Now().UTC()
}
