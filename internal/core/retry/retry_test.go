package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/querylens/querylens/internal/apperrors"
)

func TestDoSucceedsFirstAttempt(t *testing.T) {
	var calls int
	policy := Policy{MaxRetries: 3, BaseDelay: time.Second, Sleep: func(time.Duration) {
		t.Fatal("no sleep expected on immediate success")
	}}

	result, attempts, err := Do(context.Background(), policy, func(ctx context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	require.Equal(t, "ok", result)
	require.Equal(t, 1, attempts)
	require.Equal(t, 1, calls)
}

func TestDoExhaustsRetryableFailures(t *testing.T) {
	var calls int
	var delays []time.Duration
	policy := Policy{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		Sleep:      func(d time.Duration) { delays = append(delays, d) },
	}

	_, attempts, err := Do(context.Background(), policy, func(ctx context.Context) (string, error) {
		calls++
		return "", apperrors.NewTimeoutError("upstream timed out")
	})
	require.Error(t, err)
	require.True(t, apperrors.IsRetryable(err))
	require.Equal(t, 4, attempts)
	require.Equal(t, 4, calls)
	require.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, delays)
}

func TestDoStopsOnTerminalFailure(t *testing.T) {
	var calls int
	policy := Policy{MaxRetries: 3, BaseDelay: time.Second, Sleep: func(time.Duration) {
		t.Fatal("terminal failures must not be retried")
	}}

	_, attempts, err := Do(context.Background(), policy, func(ctx context.Context) (string, error) {
		calls++
		return "", apperrors.NewNotFoundError("no such record")
	})
	require.Error(t, err)
	require.Equal(t, 1, attempts)
	require.Equal(t, 1, calls)
}

func TestDoRecoversAfterFailures(t *testing.T) {
	var calls int
	var notified []int
	policy := Policy{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		Sleep:      func(time.Duration) {},
		Notify: func(attempt int, delay time.Duration, err error) {
			notified = append(notified, attempt)
		},
	}

	result, attempts, err := Do(context.Background(), policy, func(ctx context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", apperrors.NewConnectionError("connection refused", nil)
		}
		return "done", nil
	})
	require.NoError(t, err)
	require.Equal(t, "done", result)
	require.Equal(t, 3, attempts)
	require.Equal(t, []int{1, 2}, notified)
}

func TestDoZeroRetriesSurfacesFirstFailure(t *testing.T) {
	policy := Policy{MaxRetries: 0, BaseDelay: time.Second, Sleep: func(time.Duration) {
		t.Fatal("no delay may be computed when retries are disabled")
	}}

	_, attempts, err := Do(context.Background(), policy, func(ctx context.Context) (string, error) {
		return "", apperrors.NewRateLimitError("throttled")
	})
	require.Error(t, err)
	require.True(t, apperrors.IsRetryable(err))
	require.Equal(t, 1, attempts)
}
