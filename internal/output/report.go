// Package output renders successful payloads as terminal reports and
// failures as single prefixed lines. Renderers are pure; all writing is left
// to the caller.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/querylens/querylens/internal/assets/catalog"
	"github.com/querylens/querylens/internal/core"
)

const timeLayout = "2006-01-02 15:04:05"

// Movie renders a movie detail card.
func Movie(info *core.MovieInfo) string {
	if info == nil {
		return ""
	}

	var sb strings.Builder
	writeBanner(&sb, "MOVIE DETAILS", 60)
	fmt.Fprintf(&sb, "Title:        %s\n", orNA(info.Title))
	fmt.Fprintf(&sb, "Release Year: %s\n", orNA(info.Year))
	fmt.Fprintf(&sb, "Genre:        %s\n", orNA(info.Genre))
	fmt.Fprintf(&sb, "IMDb Rating:  %s/10\n", orNA(info.Rating))
	fmt.Fprintf(&sb, "Director:     %s\n", orNA(info.Director))
	sb.WriteString(rule(60))
	return sb.String()
}

// Transit renders the arrival board as a table under a station header.
func Transit(board *core.ArrivalBoard) string {
	if board == nil {
		return ""
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Route", "Destination", "Arrival In", "Status"})
	for i, arrival := range board.Arrivals {
		t.AppendRow(table.Row{
			i + 1,
			arrival.Route,
			arrival.Destination,
			fmt.Sprintf("%d min", arrival.Minutes),
			arrival.Status,
		})
	}

	var sb strings.Builder
	writeBanner(&sb, "TRANSIT ARRIVALS", 80)
	fmt.Fprintf(&sb, "Station: %s (%s)\n", board.StationName, board.StationID)
	fmt.Fprintf(&sb, "Type: %s | Updated: %s\n", titleCase(board.StationType), board.Timestamp.Format(timeLayout))
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(t.Render() + "\n")
	sb.WriteString(rule(80))
	return sb.String()
}

// Stock renders a quote card including the computed day change.
func Stock(quote *core.StockQuote) string {
	if quote == nil {
		return ""
	}

	change := quote.Close - quote.Open
	changePct := 0.0
	if quote.Open != 0 {
		changePct = change / quote.Open * 100
	}
	arrow := "📈"
	if change < 0 {
		arrow = "📉"
	}

	var sb strings.Builder
	writeBanner(&sb, "STOCK MARKET DATA", 70)
	fmt.Fprintf(&sb, "Symbol:        %s\n", quote.Symbol)
	fmt.Fprintf(&sb, "Currency:      %s\n", orNA(quote.Currency))
	fmt.Fprintf(&sb, "Updated:       %s\n", quote.Timestamp.Format(timeLayout))
	sb.WriteString(strings.Repeat("-", 70) + "\n")
	fmt.Fprintf(&sb, "Opening Price: $%.2f\n", quote.Open)
	fmt.Fprintf(&sb, "Closing Price: $%.2f\n", quote.Close)
	fmt.Fprintf(&sb, "Day Change:    %s %+.2f (%+.2f%%)\n", arrow, change, changePct)
	sb.WriteString(strings.Repeat("-", 70) + "\n")
	fmt.Fprintf(&sb, "High:          $%.2f\n", quote.High)
	fmt.Fprintf(&sb, "Low:           $%.2f\n", quote.Low)
	fmt.Fprintf(&sb, "Volume:        %s shares\n", groupInt(quote.Volume))
	sb.WriteString(rule(70))
	return sb.String()
}

// Translation renders the translation card with attempt and mode markers.
func Translation(result *core.Translation, originalText, targetLang string, attempts int) string {
	if result == nil {
		return ""
	}

	targetName, ok := catalog.LanguageName(targetLang)
	if !ok {
		targetName = strings.ToUpper(targetLang)
	}

	var sb strings.Builder
	writeBanner(&sb, "TRANSLATION RESULT", 75)
	if attempts > 1 {
		fmt.Fprintf(&sb, "Status:            ✅ Succeeded after %d attempts\n", attempts)
	} else {
		sb.WriteString("Status:            ✅ Translated successfully\n")
	}
	if result.Mock {
		sb.WriteString("Mode:              🔷 Mock Mode (Demo Data)\n")
	} else {
		sb.WriteString("Mode:              🔵 Live API\n")
	}
	fmt.Fprintf(&sb, "Timestamp:         %s\n", result.Timestamp.Format(timeLayout))
	sb.WriteString(strings.Repeat("-", 75) + "\n")
	sb.WriteString("Original Text (English):\n")
	sb.WriteString(originalText + "\n")
	sb.WriteString(strings.Repeat("-", 75) + "\n")
	fmt.Fprintf(&sb, "Translated Text (%s):\n", targetName)
	sb.WriteString(result.TranslatedText + "\n")
	sb.WriteString(rule(75))
	return sb.String()
}

// Languages renders the supported-language listing in two columns.
func Languages(languages map[string]string) string {
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	lines := make([]string, 0, len(codes))
	for _, code := range codes {
		lines = append(lines, fmt.Sprintf("%-8s → %s", code, languages[code]))
	}

	var sb strings.Builder
	writeBanner(&sb, "SUPPORTED LANGUAGES", 75)
	mid := (len(lines) + 1) / 2
	for i := 0; i < mid; i++ {
		left := lines[i]
		right := ""
		if mid+i < len(lines) {
			right = lines[mid+i]
		}
		fmt.Fprintf(&sb, "%-40s %s\n", left, right)
	}
	sb.WriteString(rule(75))
	return sb.String()
}

func writeBanner(sb *strings.Builder, title string, width int) {
	sb.WriteString("\n" + rule(width))
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	sb.WriteString(strings.Repeat(" ", pad) + title + "\n")
	sb.WriteString(rule(width))
}

func rule(width int) string {
	return strings.Repeat("=", width) + "\n"
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}

func titleCase(value string) string {
	if value == "" {
		return "N/A"
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

// groupInt renders an integer with comma separators.
func groupInt(n int64) string {
	raw := fmt.Sprintf("%d", n)
	negative := strings.HasPrefix(raw, "-")
	digits := strings.TrimPrefix(raw, "-")

	var sb strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	if negative {
		return "-" + sb.String()
	}
	return sb.String()
}
