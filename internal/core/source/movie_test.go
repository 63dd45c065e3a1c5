package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/querylens/querylens/internal/apperrors"
	"github.com/querylens/querylens/internal/core"
)

func TestMovieMockHit(t *testing.T) {
	info, err := MovieMock{}.Fetch(context.Background(), core.MovieRequest{Title: "Inception"})
	require.NoError(t, err)
	require.Equal(t, "Inception", info.Title)
	require.NotEmpty(t, info.Year)
	require.NotEmpty(t, info.Director)
}

func TestMovieMockMissIsTerminal(t *testing.T) {
	_, err := MovieMock{}.Fetch(context.Background(), core.MovieRequest{Title: "No Such Film"})
	require.Error(t, err)
	require.False(t, apperrors.IsRetryable(err))
	require.Equal(t, apperrors.ReasonNotFound, apperrors.ReasonOf(err))
	require.Contains(t, err.Error(), "Available demo movies")
}

func TestMovieLiveSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Inception", r.URL.Query().Get("t"))
		require.Equal(t, "demo-key", r.URL.Query().Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"True","Title":"Inception","Year":"2010","Genre":"Sci-Fi","imdbRating":"8.8","Director":"Christopher Nolan"}`))
	}))
	defer srv.Close()

	live := &MovieLive{BaseURL: srv.URL, APIKey: "demo-key"}
	info, err := live.Fetch(context.Background(), core.MovieRequest{Title: "Inception"})
	require.NoError(t, err)
	require.Equal(t, "Inception", info.Title)
	require.Equal(t, "8.8", info.Rating)
	require.Equal(t, "Christopher Nolan", info.Director)
}

func TestMovieLiveNotFoundIsTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	defer srv.Close()

	live := &MovieLive{BaseURL: srv.URL, APIKey: "demo-key"}
	_, err := live.Fetch(context.Background(), core.MovieRequest{Title: "Nope"})
	require.Error(t, err)
	require.False(t, apperrors.IsRetryable(err))
	require.Equal(t, apperrors.ReasonNotFound, apperrors.ReasonOf(err))
}

func TestMovieLiveServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	live := &MovieLive{BaseURL: srv.URL, APIKey: "demo-key"}
	_, err := live.Fetch(context.Background(), core.MovieRequest{Title: "Inception"})
	require.Error(t, err)
	require.True(t, apperrors.IsRetryable(err))
	require.Equal(t, apperrors.ReasonRateLimit, apperrors.ReasonOf(err))
}

func TestMovieLiveBadJSONIsTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	live := &MovieLive{BaseURL: srv.URL, APIKey: "demo-key"}
	_, err := live.Fetch(context.Background(), core.MovieRequest{Title: "Inception"})
	require.Error(t, err)
	require.False(t, apperrors.IsRetryable(err))
	require.Equal(t, apperrors.ReasonMalformedResponse, apperrors.ReasonOf(err))
}

func TestMovieLiveConnectionRefusedIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening any more

	live := &MovieLive{BaseURL: srv.URL, APIKey: "demo-key"}
	_, err := live.Fetch(context.Background(), core.MovieRequest{Title: "Inception"})
	require.Error(t, err)
	require.True(t, apperrors.IsRetryable(err))
	require.Equal(t, apperrors.ReasonConnection, apperrors.ReasonOf(err))
}
