package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationErrorEnumeratesAllowedValues(t *testing.T) {
	err := NewValidationError("Invalid station code.", "BUS001", "TRAIN001")
	require.Equal(t, "Invalid station code. Supported values: BUS001, TRAIN001", err.Error())
	require.True(t, IsValidation(err))
	require.False(t, IsRetryable(err))
}

func TestRetryableClassification(t *testing.T) {
	require.True(t, IsRetryable(NewConnectionError("refused", nil)))
	require.True(t, IsRetryable(NewTimeoutError("slow")))
	require.True(t, IsRetryable(NewRateLimitError("throttled")))
	require.False(t, IsRetryable(NewMalformedResponseError("bad json", nil)))
	require.False(t, IsRetryable(NewNotFoundError("missing")))
	require.False(t, IsRetryable(errors.New("plain")))
}

func TestRetryableSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("fetch failed: %w", NewTimeoutError("slow"))
	require.True(t, IsRetryable(wrapped))
	require.Equal(t, ReasonTimeout, ReasonOf(wrapped))
}

func TestErrorsIsComparesReason(t *testing.T) {
	err := NewRateLimitError("5 per minute")
	require.True(t, errors.Is(err, &RequestError{Reason: ReasonRateLimit}))
	require.False(t, errors.Is(err, &RequestError{Reason: ReasonTimeout}))
}

func TestHTTPStatus(t *testing.T) {
	require.Equal(t, http.StatusBadRequest, HTTPStatus(NewValidationError("bad input")))
	require.Equal(t, http.StatusNotFound, HTTPStatus(NewNotFoundError("missing")))
	require.Equal(t, http.StatusGatewayTimeout, HTTPStatus(NewTimeoutError("slow")))
	require.Equal(t, http.StatusTooManyRequests, HTTPStatus(NewRateLimitError("throttled")))
	require.Equal(t, http.StatusBadGateway, HTTPStatus(NewConnectionError("refused", nil)))
	require.Equal(t, http.StatusBadGateway, HTTPStatus(NewMalformedResponseError("bad json", nil)))
	require.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
}

func TestRequestErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewConnectionError("failed to connect", cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "failed to connect")
	require.Contains(t, err.Error(), "connection refused")
}
