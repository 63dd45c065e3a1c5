package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/querylens/querylens/internal/core"
)

// Station is one known transit stop and its canned arrivals.
type Station struct {
	Name     string         `yaml:"name"`
	Type     string         `yaml:"type"`
	Arrivals []core.Arrival `yaml:"arrivals"`
}

// StockEntry is a canned daily quote for one ticker.
type StockEntry struct {
	Name     string  `yaml:"name"`
	Open     float64 `yaml:"open"`
	Close    float64 `yaml:"close"`
	High     float64 `yaml:"high"`
	Low      float64 `yaml:"low"`
	Volume   int64   `yaml:"volume"`
	Currency string  `yaml:"currency"`
}

// MovieEntry is a canned movie record keyed by lowercased title.
type MovieEntry struct {
	Title    string `yaml:"title"`
	Year     string `yaml:"year"`
	Genre    string `yaml:"genre"`
	Rating   string `yaml:"imdb_rating"`
	Director string `yaml:"director"`
}

// Phrase is one canned translation.
type Phrase struct {
	Text        string `yaml:"text"`
	Lang        string `yaml:"lang"`
	Translation string `yaml:"translation"`
}

// Item is one entry in the search-API catalog.
type Item struct {
	ID       int     `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Category string  `yaml:"category" json:"category"`
	Price    float64 `yaml:"price" json:"price"`
}

var (
	loadOnce sync.Once
	loadErr  error

	languages map[string]string
	stations  map[string]Station
	stocks    map[string]StockEntry
	movies    map[string]MovieEntry
	phrases   map[string]string
	items     []Item
)

func load() {
	loadOnce.Do(func() {
		if err := yaml.Unmarshal(languagesYAML, &languages); err != nil {
			loadErr = fmt.Errorf("languages table: %w", err)
			return
		}
		if err := yaml.Unmarshal(stationsYAML, &stations); err != nil {
			loadErr = fmt.Errorf("stations table: %w", err)
			return
		}
		if err := yaml.Unmarshal(stocksYAML, &stocks); err != nil {
			loadErr = fmt.Errorf("stocks table: %w", err)
			return
		}
		if err := yaml.Unmarshal(moviesYAML, &movies); err != nil {
			loadErr = fmt.Errorf("movies table: %w", err)
			return
		}

		var phraseList []Phrase
		if err := yaml.Unmarshal(phrasesYAML, &phraseList); err != nil {
			loadErr = fmt.Errorf("phrases table: %w", err)
			return
		}
		phrases = make(map[string]string, len(phraseList))
		for _, p := range phraseList {
			phrases[phraseKey(p.Text, p.Lang)] = p.Translation
		}

		if err := yaml.Unmarshal(itemsYAML, &items); err != nil {
			loadErr = fmt.Errorf("items table: %w", err)
		}
	})
	if loadErr != nil {
		// The tables ship inside the binary; failing to parse them is a
		// build defect, not a runtime condition.
		panic(loadErr)
	}
}

func phraseKey(text, lang string) string {
	return strings.ToLower(strings.TrimSpace(text)) + "\x00" + strings.ToLower(strings.TrimSpace(lang))
}

// LanguageName resolves a language code to its display name.
func LanguageName(code string) (string, bool) {
	load()
	name, ok := languages[strings.ToLower(strings.TrimSpace(code))]
	return name, ok
}

// LanguageCodes returns the supported language codes, sorted.
func LanguageCodes() []string {
	load()
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Languages returns the full code-to-name table.
func Languages() map[string]string {
	load()
	out := make(map[string]string, len(languages))
	for code, name := range languages {
		out[code] = name
	}
	return out
}

// StationIDs returns the known station codes, sorted.
func StationIDs() []string {
	load()
	ids := make([]string, 0, len(stations))
	for id := range stations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// StationByID looks up a station by its code.
func StationByID(id string) (Station, bool) {
	load()
	station, ok := stations[strings.ToUpper(strings.TrimSpace(id))]
	return station, ok
}

// TickerSymbols returns the known mock tickers, sorted.
func TickerSymbols() []string {
	load()
	symbols := make([]string, 0, len(stocks))
	for symbol := range stocks {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// StockBySymbol looks up a canned quote by ticker.
func StockBySymbol(symbol string) (StockEntry, bool) {
	load()
	entry, ok := stocks[strings.ToUpper(strings.TrimSpace(symbol))]
	return entry, ok
}

// MovieByTitle looks up a canned movie, case-insensitively.
func MovieByTitle(title string) (MovieEntry, bool) {
	load()
	entry, ok := movies[strings.ToLower(strings.TrimSpace(title))]
	return entry, ok
}

// MovieTitles returns the known mock movie titles, sorted.
func MovieTitles() []string {
	load()
	titles := make([]string, 0, len(movies))
	for _, entry := range movies {
		titles = append(titles, entry.Title)
	}
	sort.Strings(titles)
	return titles
}

// Translate looks up a canned translation for the text/language pair.
func Translate(text, lang string) (string, bool) {
	load()
	translated, ok := phrases[phraseKey(text, lang)]
	return translated, ok
}

// Items returns the search-API catalog.
func Items() []Item {
	load()
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
