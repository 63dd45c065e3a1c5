package server

import (
	"encoding/json"
	"net/http"

	"github.com/querylens/querylens/internal/apperrors"
	servermw "github.com/querylens/querylens/internal/server/middleware"
)

// ErrorResponse is the JSON envelope every failed request gets.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the classified failure and its correlation ID.
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError central handler for all errors.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperrors.HTTPStatus(err))
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:      errorCode(err),
			Message:   err.Error(),
			RequestID: servermw.GetRequestID(r.Context()),
		},
	})
}

func errorCode(err error) string {
	if apperrors.IsValidation(err) {
		return "VALIDATION_ERROR"
	}
	switch apperrors.ReasonOf(err) {
	case apperrors.ReasonNotFound:
		return "NOT_FOUND"
	case apperrors.ReasonTimeout:
		return "UPSTREAM_TIMEOUT"
	case apperrors.ReasonRateLimit:
		return "RATE_LIMITED"
	case apperrors.ReasonConnection:
		return "UPSTREAM_UNAVAILABLE"
	case apperrors.ReasonMalformedResponse:
		return "BAD_UPSTREAM_RESPONSE"
	default:
		return "INTERNAL_ERROR"
	}
}
