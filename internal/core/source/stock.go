package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/querylens/querylens/internal/apperrors"
	"github.com/querylens/querylens/internal/assets/catalog"
	"github.com/querylens/querylens/internal/core"
	"github.com/querylens/querylens/internal/core/engine"
)

const stockService = "stock API"

// StockMock serves the embedded ticker table.
type StockMock struct {
	Clock func() time.Time
}

// Fetch returns the canned quote for the ticker, or a not-found failure.
func (s StockMock) Fetch(_ context.Context, req core.StockRequest) (*core.StockQuote, error) {
	entry, ok := catalog.StockBySymbol(req.Symbol)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf(
			"Invalid ticker symbol: %q. Available mock tickers: %s.",
			req.Symbol, strings.Join(catalog.TickerSymbols(), ", "),
		))
	}

	now := time.Now().UTC()
	if s.Clock != nil {
		now = s.Clock()
	}

	return &core.StockQuote{
		Symbol:    req.Symbol,
		Name:      entry.Name,
		Open:      entry.Open,
		Close:     entry.Close,
		High:      entry.High,
		Low:       entry.Low,
		Volume:    entry.Volume,
		Currency:  entry.Currency,
		Timestamp: now,
	}, nil
}

// StockLive queries the Alpha Vantage GLOBAL_QUOTE endpoint, gated by a
// trailing-window rate limiter. Locally blocked attempts fail with a
// rate-limit error without being sent and without counting against the
// window.
type StockLive struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Limiter *engine.RateLimiter
	Logger  *zap.Logger
}

type alphaVantageResponse struct {
	ErrorMessage string            `json:"Error Message"`
	Note         string            `json:"Note"`
	GlobalQuote  map[string]string `json:"Global Quote"`
}

// Fetch issues at most one quote lookup.
func (s *StockLive) Fetch(ctx context.Context, req core.StockRequest) (*core.StockQuote, error) {
	requestedAt := time.Now().UTC()
	fetchID := uuid.New().String()

	base := s.baseURL()
	endpoint := base.Hostname()

	if s.Limiter != nil {
		allowed, wait, err := s.Limiter.Allow(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, apperrors.NewRateLimitError(fmt.Sprintf(
				"API rate limit exceeded: %d requests per minute. Retry in %s.",
				engine.DefaultStockLimit.RequestsPerWindow, wait.Round(time.Second),
			))
		}
	}

	query := url.Values{}
	query.Set("function", "GLOBAL_QUOTE")
	query.Set("symbol", req.Symbol)
	query.Set("apikey", s.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, base.String()+"?"+query.Encode(), nil)
	if err != nil {
		return nil, apperrors.NewMalformedResponseError("failed to build stock request", err)
	}

	client := s.Client
	if client == nil {
		client = defaultClient(QueryTimeout)
	}

	// The request is sent from here on, so it counts against the window
	// whether it succeeds or fails.
	if s.Limiter != nil {
		if err := s.Limiter.Record(ctx, endpoint); err != nil {
			return nil, err
		}
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err, QueryTimeout, stockService)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode, stockService)
	}

	var payload alphaVantageResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, malformedJSON(stockService, err)
	}

	if payload.ErrorMessage != "" {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf(
			"Invalid ticker symbol: %q. The ticker was not found in the database.", req.Symbol,
		))
	}
	if payload.Note != "" {
		return nil, apperrors.NewRateLimitError(fmt.Sprintf(
			"API call frequency limit reached: %s. Please try again later.", payload.Note,
		))
	}
	if len(payload.GlobalQuote) == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf(
			"No data available for ticker: %q. The ticker may not be trading.", req.Symbol,
		))
	}

	quote, err := parseGlobalQuote(payload.GlobalQuote)
	if err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.Debug("stock fetch resolved",
			zap.String("fetch_id", fetchID),
			zap.String("symbol", req.Symbol),
			zap.Duration("elapsed", time.Since(requestedAt)))
	}

	quote.Timestamp = time.Now().UTC()
	quote.Currency = "USD"
	return quote, nil
}

func parseGlobalQuote(fields map[string]string) (*core.StockQuote, error) {
	required := []string{"01. symbol", "02. open", "03. high", "04. low", "05. price", "06. volume"}
	for _, key := range required {
		if _, ok := fields[key]; !ok {
			return nil, apperrors.NewMalformedResponseError(
				"Malformed API response: missing required stock data fields.", nil)
		}
	}

	open, err1 := strconv.ParseFloat(fields["02. open"], 64)
	high, err2 := strconv.ParseFloat(fields["03. high"], 64)
	low, err3 := strconv.ParseFloat(fields["04. low"], 64)
	price, err4 := strconv.ParseFloat(fields["05. price"], 64)
	volume, err5 := strconv.ParseFloat(fields["06. volume"], 64)
	for _, err := range []error{err1, err2, err3, err4, err5} {
		if err != nil {
			return nil, apperrors.NewMalformedResponseError(
				"Malformed API response: invalid data types in response.", err)
		}
	}

	return &core.StockQuote{
		Symbol: fields["01. symbol"],
		Open:   open,
		High:   high,
		Low:    low,
		Close:  price,
		Volume: int64(volume),
	}, nil
}

func (s *StockLive) baseURL() *url.URL {
	if s != nil && s.BaseURL != "" {
		if parsed, err := url.Parse(s.BaseURL); err == nil {
			return parsed
		}
	}
	parsed, _ := url.Parse("https://www.alphavantage.co/query")
	return parsed
}
