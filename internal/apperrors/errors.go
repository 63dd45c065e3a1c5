// Package apperrors defines the error taxonomy shared by every querylens
// utility: validation errors (caller input, never retried), and request
// errors classified as retryable or terminal.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Reason classifies a failed request against a data source.
type Reason string

const (
	ReasonConnection        Reason = "connection"
	ReasonTimeout           Reason = "timeout"
	ReasonRateLimit         Reason = "rate_limit"
	ReasonMalformedResponse Reason = "malformed_response"
	ReasonNotFound          Reason = "not_found"
)

// ValidationError reports malformed caller input. It is produced before any
// source call and is never retried.
type ValidationError struct {
	Message string
	// Allowed enumerates acceptable values when the rule is set membership.
	Allowed []string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s Supported values: %s", e.Message, strings.Join(e.Allowed, ", "))
}

// NewValidationError builds a validation error with an optional allowed set.
func NewValidationError(message string, allowed ...string) *ValidationError {
	return &ValidationError{Message: message, Allowed: allowed}
}

// RequestError reports a failed attempt against a data source. Retryable
// errors are environment-induced (connection, timeout, upstream throttling);
// terminal errors mean the remote system authoritatively rejected the request.
type RequestError struct {
	Reason    Reason
	Message   string
	Retryable bool
	Err       error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *RequestError) Unwrap() error { return e.Err }

// Is allows errors.Is comparison on the reason alone.
func (e *RequestError) Is(target error) bool {
	other, ok := target.(*RequestError)
	if !ok {
		return false
	}
	return other.Reason == e.Reason
}

func NewConnectionError(message string, err error) *RequestError {
	return &RequestError{Reason: ReasonConnection, Message: message, Retryable: true, Err: err}
}

func NewTimeoutError(message string) *RequestError {
	return &RequestError{Reason: ReasonTimeout, Message: message, Retryable: true}
}

func NewRateLimitError(message string) *RequestError {
	return &RequestError{Reason: ReasonRateLimit, Message: message, Retryable: true}
}

func NewMalformedResponseError(message string, err error) *RequestError {
	return &RequestError{Reason: ReasonMalformedResponse, Message: message, Err: err}
}

func NewNotFoundError(message string) *RequestError {
	return &RequestError{Reason: ReasonNotFound, Message: message}
}

// IsRetryable reports whether err is a request error the retry driver may
// attempt again. Validation and terminal errors are not retryable.
func IsRetryable(err error) bool {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Retryable
	}
	return false
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ReasonOf extracts the request-error reason, or "" for other errors.
func ReasonOf(err error) Reason {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Reason
	}
	return ""
}

// HTTPStatus resolves the HTTP status code the serve surface reports for an
// error, mirroring the code-to-status mapping used for CLI failures.
func HTTPStatus(err error) int {
	if IsValidation(err) {
		return http.StatusBadRequest
	}

	switch ReasonOf(err) {
	case ReasonNotFound:
		return http.StatusNotFound
	case ReasonTimeout:
		return http.StatusGatewayTimeout
	case ReasonRateLimit:
		return http.StatusTooManyRequests
	case ReasonConnection, ReasonMalformedResponse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
