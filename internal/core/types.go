package core

import "time"

// MovieRequest asks for details of one movie by title.
type MovieRequest struct {
	Title string
}

// MovieInfo is the payload of a successful movie lookup.
type MovieInfo struct {
	Title    string `json:"title"`
	Year     string `json:"year"`
	Genre    string `json:"genre"`
	Rating   string `json:"imdb_rating"`
	Director string `json:"director"`
}

// TransitRequest asks for the next arrivals at one station.
type TransitRequest struct {
	StationID string
	Limit     int
}

// Arrival is a single upcoming departure at a station.
type Arrival struct {
	Route       string `json:"route" yaml:"route"`
	Destination string `json:"destination" yaml:"destination"`
	Minutes     int    `json:"arrival_time" yaml:"arrival_time"`
	Status      string `json:"status" yaml:"status"`
}

// ArrivalBoard is the payload of a successful transit lookup.
type ArrivalBoard struct {
	StationID   string    `json:"station_id"`
	StationName string    `json:"station_name"`
	StationType string    `json:"station_type"`
	Timestamp   time.Time `json:"timestamp"`
	Arrivals    []Arrival `json:"arrivals"`
}

// StockRequest asks for the daily quote of one ticker.
type StockRequest struct {
	Symbol string
}

// StockQuote is the payload of a successful stock lookup.
type StockQuote struct {
	Symbol    string    `json:"symbol"`
	Name      string    `json:"name,omitempty"`
	Open      float64   `json:"open"`
	Close     float64   `json:"close"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Volume    int64     `json:"volume"`
	Currency  string    `json:"currency"`
	Timestamp time.Time `json:"timestamp"`
}

// TranslateRequest asks for one text to be translated.
type TranslateRequest struct {
	Text       string
	TargetLang string
}

// Translation is the payload of a successful translation.
type Translation struct {
	TranslatedText string    `json:"translated_text"`
	DetectedLang   string    `json:"detected_language,omitempty"`
	Confidence     float64   `json:"confidence,omitempty"`
	Mock           bool      `json:"is_mock"`
	Timestamp      time.Time `json:"timestamp"`
}

// Provenance captures metadata about how a live fetch was resolved.
type Provenance struct {
	FetchID     string    `json:"fetch_id"`
	RequestedAt time.Time `json:"requested_at"`
	ResolvedAt  time.Time `json:"resolved_at"`
	Server      string    `json:"server,omitempty"`
}

// RateLimitState tracks sent requests inside the current window. The count is
// monotonic within a window and reset only at a window boundary.
type RateLimitState struct {
	WindowStart  time.Time
	RequestCount int
}
