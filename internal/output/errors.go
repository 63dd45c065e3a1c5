package output

import (
	"fmt"

	"github.com/querylens/querylens/internal/apperrors"
)

// FormatError renders any pipeline failure as a single prefixed line. The
// prefixes mirror the wording of the interactive scripts this tool replaces.
func FormatError(err error) string {
	return fmt.Sprintf("❌ %s: %s", errorPrefix(err), err.Error())
}

func errorPrefix(err error) string {
	if apperrors.IsValidation(err) {
		return "Validation Error"
	}

	switch apperrors.ReasonOf(err) {
	case apperrors.ReasonTimeout:
		return "Timeout Error"
	case apperrors.ReasonConnection, apperrors.ReasonRateLimit:
		return "Connection Error"
	case apperrors.ReasonNotFound, apperrors.ReasonMalformedResponse:
		return "Validation Error"
	default:
		return "Unexpected Error"
	}
}
