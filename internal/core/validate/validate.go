// Package validate turns raw user input into typed requests. It performs no
// I/O and always runs before any source is contacted.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/querylens/querylens/internal/apperrors"
	"github.com/querylens/querylens/internal/assets/catalog"
	"github.com/querylens/querylens/internal/core"
)

// MaxTranslateTextLen bounds the text accepted by the translate utility.
const MaxTranslateTextLen = 5000

var tickerPattern = regexp.MustCompile(`^[A-Za-z]{1,5}$`)

// Movie validates a movie title.
func Movie(title string) (core.MovieRequest, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return core.MovieRequest{}, apperrors.NewValidationError("Movie title cannot be empty.")
	}
	return core.MovieRequest{Title: trimmed}, nil
}

// Transit validates a station code and arrival limit.
func Transit(stationID string, limit int) (core.TransitRequest, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(stationID))
	if trimmed == "" {
		return core.TransitRequest{}, apperrors.NewValidationError("Station ID cannot be empty.")
	}

	if _, ok := catalog.StationByID(trimmed); !ok {
		return core.TransitRequest{}, apperrors.NewValidationError(
			fmt.Sprintf("Invalid station code: %q.", stationID),
			catalog.StationIDs()...,
		)
	}

	if limit < 1 || limit > 10 {
		return core.TransitRequest{}, apperrors.NewValidationError("Limit must be between 1 and 10.")
	}

	return core.TransitRequest{StationID: trimmed, Limit: limit}, nil
}

// Stock validates a ticker symbol.
func Stock(symbol string) (core.StockRequest, error) {
	trimmed := strings.TrimSpace(symbol)
	if trimmed == "" {
		return core.StockRequest{}, apperrors.NewValidationError("Ticker symbol cannot be empty.")
	}

	if !tickerPattern.MatchString(trimmed) {
		return core.StockRequest{}, apperrors.NewValidationError(
			fmt.Sprintf("Invalid ticker symbol: %q. Ticker symbols must be 1-5 alphabetic characters.", symbol),
		)
	}

	return core.StockRequest{Symbol: strings.ToUpper(trimmed)}, nil
}

// Translate validates the text and target language code.
func Translate(text, targetLang string) (core.TranslateRequest, error) {
	if strings.TrimSpace(text) == "" {
		return core.TranslateRequest{}, apperrors.NewValidationError("Text cannot be empty. Please provide text to translate.")
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) > MaxTranslateTextLen {
		return core.TranslateRequest{}, apperrors.NewValidationError(
			fmt.Sprintf("Text too long. Maximum %d characters allowed.", MaxTranslateTextLen),
		)
	}

	code := strings.ToLower(strings.TrimSpace(targetLang))
	if code == "" {
		return core.TranslateRequest{}, apperrors.NewValidationError("Target language code cannot be empty.")
	}
	if _, ok := catalog.LanguageName(code); !ok {
		return core.TranslateRequest{}, apperrors.NewValidationError(
			fmt.Sprintf("Invalid language code: %q.", targetLang),
			catalog.LanguageCodes()...,
		)
	}

	return core.TranslateRequest{Text: text, TargetLang: code}, nil
}
