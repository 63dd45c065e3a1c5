package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/querylens/querylens/internal/apperrors"
	"github.com/querylens/querylens/internal/assets/catalog"
	"github.com/querylens/querylens/internal/core"
)

const transitService = "Transit API"

// TransitMock serves the embedded station table.
type TransitMock struct {
	Clock func() time.Time
}

// Fetch returns up to Limit canned arrivals for the station.
func (s TransitMock) Fetch(_ context.Context, req core.TransitRequest) (*core.ArrivalBoard, error) {
	station, ok := catalog.StationByID(req.StationID)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf(
			"Invalid station code: %q. Available stations: %s.",
			req.StationID, strings.Join(catalog.StationIDs(), ", "),
		))
	}

	arrivals := station.Arrivals
	if req.Limit < len(arrivals) {
		arrivals = arrivals[:req.Limit]
	}

	board := &core.ArrivalBoard{
		StationID:   req.StationID,
		StationName: station.Name,
		StationType: station.Type,
		Timestamp:   s.now(),
		Arrivals:    append([]core.Arrival(nil), arrivals...),
	}
	return board, nil
}

func (s TransitMock) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}

// TransitLive queries a real transit arrivals endpoint.
type TransitLive struct {
	Client  *http.Client
	BaseURL string
	Logger  *zap.Logger
}

type transitResponse struct {
	Status      string         `json:"status"`
	Message     string         `json:"message"`
	StationID   string         `json:"station_id"`
	StationName string         `json:"station_name"`
	StationType string         `json:"station_type"`
	Timestamp   time.Time      `json:"timestamp"`
	Arrivals    []core.Arrival `json:"arrivals"`
}

// Fetch issues one arrivals lookup.
func (s *TransitLive) Fetch(ctx context.Context, req core.TransitRequest) (*core.ArrivalBoard, error) {
	requestedAt := time.Now().UTC()
	fetchID := uuid.New().String()

	query := url.Values{}
	query.Set("station_id", req.StationID)
	query.Set("limit", fmt.Sprintf("%d", req.Limit))

	endpoint := strings.TrimSuffix(s.BaseURL, "/") + "/arrivals?" + query.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, apperrors.NewMalformedResponseError("failed to build transit request", err)
	}

	client := s.Client
	if client == nil {
		client = defaultClient(QueryTimeout)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err, QueryTimeout, transitService)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode, transitService)
	}

	var payload transitResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, malformedJSON(transitService, err)
	}

	if payload.Status == "error" {
		message := strings.ToLower(payload.Message)
		switch {
		case strings.Contains(message, "station") || strings.Contains(message, "not found"):
			return nil, apperrors.NewNotFoundError(fmt.Sprintf(
				"Invalid station code: %q. Station not found in the transit system.", req.StationID,
			))
		case strings.Contains(message, "service unavailable"):
			return nil, apperrors.NewRateLimitError(fmt.Sprintf(
				"Service temporarily unavailable for station %q. Please try again in a few moments.", req.StationID,
			))
		default:
			return nil, apperrors.NewMalformedResponseError(fmt.Sprintf("API Error: %s", payload.Message), nil)
		}
	}

	if payload.StationID == "" || payload.Arrivals == nil {
		return nil, apperrors.NewMalformedResponseError("Malformed API response: missing arrival fields.", nil)
	}

	if s.Logger != nil {
		s.Logger.Debug("transit fetch resolved",
			zap.String("fetch_id", fetchID),
			zap.String("station_id", req.StationID),
			zap.Duration("elapsed", time.Since(requestedAt)))
	}

	timestamp := payload.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	return &core.ArrivalBoard{
		StationID:   payload.StationID,
		StationName: payload.StationName,
		StationType: payload.StationType,
		Timestamp:   timestamp,
		Arrivals:    payload.Arrivals,
	}, nil
}
