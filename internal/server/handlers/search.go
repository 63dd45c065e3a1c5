package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/querylens/querylens/internal/apperrors"
	"github.com/querylens/querylens/internal/assets/catalog"
)

// SearchResponse is the payload of GET /search.
type SearchResponse struct {
	Count   int            `json:"count"`
	Results []catalog.Item `json:"results"`
}

// SearchHandler filters the embedded item catalog by name, category and an
// inclusive price range. All filters are optional and combine with AND.
func SearchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := strings.ToLower(q.Get("name"))
	category := strings.ToLower(q.Get("category"))

	minPrice, err := parsePrice(q.Get("min_price"), 0)
	if err != nil {
		respondWithError(w, r, err)
		return
	}
	maxPrice, err := parsePrice(q.Get("max_price"), -1)
	if err != nil {
		respondWithError(w, r, err)
		return
	}

	results := make([]catalog.Item, 0)
	for _, item := range catalog.Items() {
		if name != "" && !strings.Contains(strings.ToLower(item.Name), name) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(item.Category), category) {
			continue
		}
		if item.Price < minPrice {
			continue
		}
		if maxPrice >= 0 && item.Price > maxPrice {
			continue
		}
		results = append(results, item)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(SearchResponse{Count: len(results), Results: results})
}

// parsePrice returns fallback when raw is empty; a negative fallback means
// the bound is unset.
func parsePrice(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperrors.NewValidationError(fmt.Sprintf("invalid price value %q", raw))
	}
	return value, nil
}
