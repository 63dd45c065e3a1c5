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

const movieService = "OMDb API"

// MovieMock serves the embedded movie table.
type MovieMock struct{}

// Fetch returns the canned record for the title, or a not-found failure.
func (MovieMock) Fetch(_ context.Context, req core.MovieRequest) (*core.MovieInfo, error) {
	entry, ok := catalog.MovieByTitle(req.Title)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf(
			"Movie not found: %q. Available demo movies: %s.",
			req.Title, strings.Join(catalog.MovieTitles(), ", "),
		))
	}

	return &core.MovieInfo{
		Title:    entry.Title,
		Year:     entry.Year,
		Genre:    entry.Genre,
		Rating:   entry.Rating,
		Director: entry.Director,
	}, nil
}

// MovieLive queries the OMDb API.
type MovieLive struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Logger  *zap.Logger
}

type omdbResponse struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Genre    string `json:"Genre"`
	Rating   string `json:"imdbRating"`
	Director string `json:"Director"`
}

// Fetch issues one OMDb title lookup.
func (s *MovieLive) Fetch(ctx context.Context, req core.MovieRequest) (*core.MovieInfo, error) {
	requestedAt := time.Now().UTC()
	fetchID := uuid.New().String()

	base := s.baseURL()
	query := url.Values{}
	query.Set("t", req.Title)
	query.Set("apikey", s.APIKey)
	query.Set("type", "movie")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+query.Encode(), nil)
	if err != nil {
		return nil, apperrors.NewMalformedResponseError("failed to build OMDb request", err)
	}

	client := s.Client
	if client == nil {
		client = defaultClient(QueryTimeout)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err, QueryTimeout, movieService)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode, movieService)
	}

	var payload omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, malformedJSON(movieService, err)
	}

	if strings.EqualFold(payload.Response, "False") {
		message := payload.Error
		if message == "" {
			message = "Unknown error occurred."
		}
		if strings.Contains(strings.ToLower(message), "not found") {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf(
				"Movie not found: %q. Please check the title and try again.", req.Title,
			))
		}
		return nil, apperrors.NewMalformedResponseError(fmt.Sprintf("API Error: %s", message), nil)
	}

	if payload.Title == "" {
		return nil, apperrors.NewMalformedResponseError("Malformed API response: missing movie fields.", nil)
	}

	if s.Logger != nil {
		s.Logger.Debug("movie fetch resolved",
			zap.String("fetch_id", fetchID),
			zap.String("title", req.Title),
			zap.Duration("elapsed", time.Since(requestedAt)))
	}

	return &core.MovieInfo{
		Title:    payload.Title,
		Year:     payload.Year,
		Genre:    payload.Genre,
		Rating:   payload.Rating,
		Director: payload.Director,
	}, nil
}

func (s *MovieLive) baseURL() string {
	if s != nil && s.BaseURL != "" {
		return s.BaseURL
	}
	return "http://www.omdbapi.com/"
}
