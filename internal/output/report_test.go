package output

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/querylens/querylens/internal/apperrors"
	"github.com/querylens/querylens/internal/core"
)

func TestMovieReport(t *testing.T) {
	out := Movie(&core.MovieInfo{
		Title:    "Inception",
		Year:     "2010",
		Genre:    "Sci-Fi",
		Rating:   "8.8",
		Director: "Christopher Nolan",
	})
	require.Contains(t, out, "MOVIE DETAILS")
	require.Contains(t, out, "Title:        Inception")
	require.Contains(t, out, "IMDb Rating:  8.8/10")
	require.Contains(t, out, "Director:     Christopher Nolan")
}

func TestMovieReportBlankFieldsRenderNA(t *testing.T) {
	out := Movie(&core.MovieInfo{Title: "Untitled"})
	require.Contains(t, out, "Release Year: N/A")
	require.Contains(t, out, "Director:     N/A")
}

func TestTransitReport(t *testing.T) {
	board := &core.ArrivalBoard{
		StationID:   "BUS001",
		StationName: "Central Station",
		StationType: "bus",
		Timestamp:   time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC),
		Arrivals: []core.Arrival{
			{Route: "12", Destination: "Airport Terminal", Minutes: 3, Status: "On time"},
			{Route: "23", Destination: "Harbor View", Minutes: 12, Status: "Delayed +2 min"},
		},
	}
	out := Transit(board)
	require.Contains(t, out, "TRANSIT ARRIVALS")
	require.Contains(t, out, "Station: Central Station (BUS001)")
	require.Contains(t, out, "Airport Terminal")
	require.Contains(t, out, "3 min")
	require.Contains(t, out, "Delayed +2 min")
}

func TestStockReportDayChange(t *testing.T) {
	quote := &core.StockQuote{
		Symbol:    "AAPL",
		Open:      232.45,
		Close:     235.80,
		High:      238.50,
		Low:       231.20,
		Volume:    52840000,
		Currency:  "USD",
		Timestamp: time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC),
	}
	out := Stock(quote)
	require.Contains(t, out, "STOCK MARKET DATA")
	require.Contains(t, out, "Opening Price: $232.45")
	require.Contains(t, out, "📈 +3.35 (+1.44%)")
	require.Contains(t, out, "Volume:        52,840,000 shares")
}

func TestStockReportNegativeChange(t *testing.T) {
	out := Stock(&core.StockQuote{Symbol: "TSLA", Open: 100, Close: 95})
	require.Contains(t, out, "📉 -5.00 (-5.00%)")
}

func TestTranslationReport(t *testing.T) {
	result := &core.Translation{
		TranslatedText: "Hola mundo",
		Mock:           true,
		Timestamp:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	out := Translation(result, "Hello World", "es", 1)
	require.Contains(t, out, "TRANSLATION RESULT")
	require.Contains(t, out, "✅ Translated successfully")
	require.Contains(t, out, "🔷 Mock Mode (Demo Data)")
	require.Contains(t, out, "Translated Text (Spanish):")
	require.Contains(t, out, "Hola mundo")
}

func TestTranslationReportAfterRetries(t *testing.T) {
	result := &core.Translation{TranslatedText: "Bonjour", Mock: false}
	out := Translation(result, "Hello", "fr", 3)
	require.Contains(t, out, "✅ Succeeded after 3 attempts")
	require.Contains(t, out, "🔵 Live API")
}

func TestLanguagesListing(t *testing.T) {
	out := Languages(map[string]string{"es": "Spanish", "fr": "French", "de": "German"})
	require.Contains(t, out, "SUPPORTED LANGUAGES")
	require.Contains(t, out, "Spanish")
	require.Contains(t, out, "de")
}

func TestFormatErrorPrefixes(t *testing.T) {
	require.Equal(t,
		"❌ Validation Error: Ticker symbol cannot be empty.",
		FormatError(apperrors.NewValidationError("Ticker symbol cannot be empty.")))

	require.Contains(t,
		FormatError(apperrors.NewTimeoutError("timed out")),
		"❌ Timeout Error:")

	require.Contains(t,
		FormatError(apperrors.NewConnectionError("refused", nil)),
		"❌ Connection Error:")

	require.Contains(t,
		FormatError(apperrors.NewRateLimitError("throttled")),
		"❌ Connection Error:")

	require.Contains(t,
		FormatError(apperrors.NewNotFoundError("missing")),
		"❌ Validation Error:")
}
