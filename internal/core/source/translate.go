package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/querylens/querylens/internal/apperrors"
	"github.com/querylens/querylens/internal/assets/catalog"
	"github.com/querylens/querylens/internal/core"
)

const translateService = "translation API"

// TranslateMock serves the embedded phrase table. Unknown phrases get a
// placeholder rendering instead of a not-found failure, matching the demo
// behavior of the reference service.
type TranslateMock struct {
	Clock func() time.Time
}

// Fetch returns a canned or placeholder translation. It never fails.
func (s TranslateMock) Fetch(_ context.Context, req core.TranslateRequest) (*core.Translation, error) {
	now := time.Now().UTC()
	if s.Clock != nil {
		now = s.Clock()
	}

	translated, ok := catalog.Translate(req.Text, req.TargetLang)
	if !ok {
		name, _ := catalog.LanguageName(req.TargetLang)
		if name == "" {
			name = strings.ToUpper(req.TargetLang)
		}
		translated = fmt.Sprintf("[%s translation of %q]", name, req.Text)
	}

	return &core.Translation{
		TranslatedText: translated,
		DetectedLang:   "en",
		Confidence:     0.95,
		Mock:           true,
		Timestamp:      now,
	}, nil
}

// TranslateLive queries a LibreTranslate-compatible endpoint.
type TranslateLive struct {
	Client   *http.Client
	Endpoint string
	Logger   *zap.Logger
}

type libreTranslateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type libreTranslateResponse struct {
	Error            string `json:"error"`
	TranslatedText   string `json:"translatedText"`
	DetectedLanguage struct {
		Language   string  `json:"language"`
		Confidence float64 `json:"confidence"`
	} `json:"detectedLanguage"`
}

// Fetch issues one translation request.
func (s *TranslateLive) Fetch(ctx context.Context, req core.TranslateRequest) (*core.Translation, error) {
	requestedAt := time.Now().UTC()
	fetchID := uuid.New().String()

	body, err := json.Marshal(libreTranslateRequest{Q: req.Text, Source: "auto", Target: req.TargetLang})
	if err != nil {
		return nil, apperrors.NewMalformedResponseError("failed to encode translation request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewMalformedResponseError("failed to build translation request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = defaultClient(TranslateTimeout)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(err, TranslateTimeout, translateService)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode, translateService)
	}

	var payload libreTranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, malformedJSON(translateService, err)
	}

	if payload.Error != "" {
		message := strings.ToLower(payload.Error)
		if strings.Contains(message, "quota") || strings.Contains(message, "limit") {
			return nil, apperrors.NewRateLimitError(fmt.Sprintf(
				"API quota exceeded: %s. Please try again later.", payload.Error,
			))
		}
		return nil, apperrors.NewMalformedResponseError(fmt.Sprintf("API Error: %s", payload.Error), nil)
	}

	if payload.TranslatedText == "" {
		return nil, apperrors.NewMalformedResponseError(
			"Malformed API response: missing 'translatedText' field.", nil)
	}

	if s.Logger != nil {
		s.Logger.Debug("translate fetch resolved",
			zap.String("fetch_id", fetchID),
			zap.String("target", req.TargetLang),
			zap.Duration("elapsed", time.Since(requestedAt)))
	}

	return &core.Translation{
		TranslatedText: payload.TranslatedText,
		DetectedLang:   payload.DetectedLanguage.Language,
		Confidence:     payload.DetectedLanguage.Confidence,
		Mock:           false,
		Timestamp:      time.Now().UTC(),
	}, nil
}

func (s *TranslateLive) endpoint() string {
	if s != nil && s.Endpoint != "" {
		return s.Endpoint
	}
	return "https://libretranslate.de/translate"
}
