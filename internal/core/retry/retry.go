// Package retry implements the bounded exponential-backoff loop used by the
// translate utility. Terminal failures and successes return immediately; only
// retryable failures consume attempts.
package retry

import (
	"context"
	"time"

	"github.com/querylens/querylens/internal/apperrors"
)

// Policy configures one retry loop.
type Policy struct {
	// MaxRetries is the number of additional attempts after the first.
	// Zero means exactly one attempt.
	MaxRetries int

	// BaseDelay is the delay before the first retry; it doubles each
	// retry after that (1s, 2s, 4s with the 1s default).
	BaseDelay time.Duration

	// Sleep performs the timed wait between attempts. Nil means time.Sleep.
	Sleep func(time.Duration)

	// Notify, when set, is called before each non-final retry with the
	// 1-based attempt number that failed and the upcoming delay.
	Notify func(attempt int, delay time.Duration, err error)
}

// DefaultPolicy matches the translate utility: up to 3 retries on a 1s base.
func DefaultPolicy() Policy {
	return Policy{MaxRetries: 3, BaseDelay: time.Second}
}

// Do invokes fn until it succeeds, fails terminally, or the attempt budget is
// exhausted. It returns the payload, the number of attempts made, and the
// final error. The attempt count on success equals failures + 1.
func Do[T any](ctx context.Context, p Policy, fn func(context.Context) (T, error)) (T, int, error) {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var zero T
	for attempt := 0; ; attempt++ {
		payload, err := fn(ctx)
		if err == nil {
			return payload, attempt + 1, nil
		}

		if !apperrors.IsRetryable(err) || attempt == p.MaxRetries {
			return zero, attempt + 1, err
		}

		delay := p.BaseDelay << attempt
		if p.Notify != nil {
			p.Notify(attempt+1, delay, err)
		}
		sleep(delay)
	}
}
