// Package source implements the fetch stage of each utility: a mock variant
// reading the embedded catalog and a live variant issuing exactly one HTTP
// request per call. Both are selected at construction, never at call time.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/querylens/querylens/internal/apperrors"
	"github.com/querylens/querylens/internal/core"
)

// Per-utility client timeouts.
const (
	QueryTimeout     = 10 * time.Second
	TranslateTimeout = 15 * time.Second
)

// MovieSource fetches movie details for a validated request.
type MovieSource interface {
	Fetch(ctx context.Context, req core.MovieRequest) (*core.MovieInfo, error)
}

// TransitSource fetches the arrival board for a validated request.
type TransitSource interface {
	Fetch(ctx context.Context, req core.TransitRequest) (*core.ArrivalBoard, error)
}

// StockSource fetches a daily quote for a validated request.
type StockSource interface {
	Fetch(ctx context.Context, req core.StockRequest) (*core.StockQuote, error)
}

// TranslateSource fetches a translation for a validated request.
type TranslateSource interface {
	Fetch(ctx context.Context, req core.TranslateRequest) (*core.Translation, error)
}

// classifyTransportError maps a failed round trip to the retryable taxonomy:
// deadline exhaustion is a timeout, everything else a connection failure.
func classifyTransportError(err error, timeout time.Duration, service string) error {
	var urlErr *url.Error
	timedOut := errors.Is(err, context.DeadlineExceeded)
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		timedOut = true
	}

	if timedOut {
		return apperrors.NewTimeoutError(fmt.Sprintf(
			"Request timed out after %d seconds. The %s is not responding. Please try again later.",
			int(timeout.Seconds()), service,
		))
	}

	return apperrors.NewConnectionError(fmt.Sprintf(
		"Failed to connect to the %s. Please check your internet connection.", service,
	), err)
}

// classifyStatus maps an unexpected HTTP status: 404 means the entity does
// not exist, 429 and 5xx mean upstream overload, anything else is treated as
// a malformed exchange.
func classifyStatus(statusCode int, service string) error {
	switch {
	case statusCode == http.StatusNotFound:
		return apperrors.NewNotFoundError(fmt.Sprintf("The %s reported the requested entity was not found.", service))
	case statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError:
		return apperrors.NewRateLimitError(fmt.Sprintf(
			"The %s is overloaded (HTTP %d). Please try again later.", service, statusCode,
		))
	default:
		return apperrors.NewMalformedResponseError(fmt.Sprintf(
			"Unexpected HTTP %d from the %s.", statusCode, service,
		), nil)
	}
}

func malformedJSON(service string, err error) error {
	return apperrors.NewMalformedResponseError(fmt.Sprintf(
		"Malformed API response: invalid JSON returned by the %s.", service,
	), err)
}

func defaultClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
