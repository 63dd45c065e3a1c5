package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/querylens/querylens/internal/apperrors"
	"github.com/querylens/querylens/internal/core"
)

func TestTranslateMockHit(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mock := TranslateMock{Clock: func() time.Time { return fixed }}

	result, err := mock.Fetch(context.Background(), core.TranslateRequest{Text: "Hello World", TargetLang: "es"})
	require.NoError(t, err)
	require.Equal(t, "Hola mundo", result.TranslatedText)
	require.Equal(t, "en", result.DetectedLang)
	require.True(t, result.Mock)
	require.Equal(t, fixed, result.Timestamp)
}

func TestTranslateMockMissUsesPlaceholder(t *testing.T) {
	result, err := TranslateMock{}.Fetch(context.Background(), core.TranslateRequest{Text: "An unlisted phrase", TargetLang: "fr"})
	require.NoError(t, err)
	require.Contains(t, result.TranslatedText, "French translation of")
	require.Contains(t, result.TranslatedText, "An unlisted phrase")
	require.True(t, result.Mock)
}

func TestTranslateLiveSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Hello", body["q"])
		require.Equal(t, "auto", body["source"])
		require.Equal(t, "es", body["target"])
		_, _ = w.Write([]byte(`{"translatedText":"Hola","detectedLanguage":{"language":"en","confidence":0.98}}`))
	}))
	defer srv.Close()

	live := &TranslateLive{Endpoint: srv.URL}
	result, err := live.Fetch(context.Background(), core.TranslateRequest{Text: "Hello", TargetLang: "es"})
	require.NoError(t, err)
	require.Equal(t, "Hola", result.TranslatedText)
	require.Equal(t, "en", result.DetectedLang)
	require.InDelta(t, 0.98, result.Confidence, 1e-9)
	require.False(t, result.Mock)
}

func TestTranslateLiveQuotaErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Translation quota exceeded"}`))
	}))
	defer srv.Close()

	live := &TranslateLive{Endpoint: srv.URL}
	_, err := live.Fetch(context.Background(), core.TranslateRequest{Text: "Hello", TargetLang: "es"})
	require.Error(t, err)
	require.True(t, apperrors.IsRetryable(err))
	require.Equal(t, apperrors.ReasonRateLimit, apperrors.ReasonOf(err))
}

func TestTranslateLiveMissingTextIsMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	live := &TranslateLive{Endpoint: srv.URL}
	_, err := live.Fetch(context.Background(), core.TranslateRequest{Text: "Hello", TargetLang: "es"})
	require.Error(t, err)
	require.False(t, apperrors.IsRetryable(err))
	require.Equal(t, apperrors.ReasonMalformedResponse, apperrors.ReasonOf(err))
}

func TestTranslateLiveHTTP503IsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	live := &TranslateLive{Endpoint: srv.URL}
	_, err := live.Fetch(context.Background(), core.TranslateRequest{Text: "Hello", TargetLang: "es"})
	require.Error(t, err)
	require.True(t, apperrors.IsRetryable(err))
}
