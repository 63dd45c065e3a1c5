package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/querylens/querylens/internal/assets/catalog"
	"github.com/querylens/querylens/internal/config"
	"github.com/querylens/querylens/internal/core/source"
	"github.com/querylens/querylens/internal/core/validate"
	"github.com/querylens/querylens/internal/observability"
	"github.com/querylens/querylens/internal/output"
)

var transitCmd = &cobra.Command{
	Use:   "transit [station-id] [limit]",
	Short: "Show upcoming transit arrivals for a station",
	Long: `Show the next arrivals for a transit station. Answers from the
embedded demo timetable unless a transit API endpoint is configured
(transit.base_url). The optional limit caps how many arrivals are shown
(1-10, default 5).`,
	Args: cobra.MaximumNArgs(2),
	RunE: runTransit,
}

func init() {
	rootCmd.AddCommand(transitCmd)
}

func runTransit(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	var stationID string
	if len(args) > 0 {
		stationID = strings.TrimSpace(args[0])
	} else {
		fmt.Println("\nAvailable demo stations:")
		for _, id := range catalog.StationIDs() {
			station, _ := catalog.StationByID(id)
			fmt.Printf("  • %-8s - %s (%s)\n", id, station.Name, station.Type)
		}
		fmt.Println()
		stationID = promptLine("Enter station code: ")
	}

	limit := cfg.Transit.DefaultLimit
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Printf("Warning: Invalid limit %q, using default of %d\n", args[1], limit)
		} else {
			limit = parsed
		}
	}

	req, err := validate.Transit(stationID, limit)
	if err != nil {
		return reportFailure(err)
	}

	var src source.TransitSource = source.TransitMock{}
	if cfg.TransitLive() {
		src = &source.TransitLive{
			Client:  httpClient(cfg.Transit.Timeout),
			BaseURL: cfg.Transit.BaseURL,
			Logger:  observability.CLILogger,
		}
	}

	fmt.Println("\nFetching transit information...")
	board, err := src.Fetch(cmd.Context(), req)
	if err != nil {
		return reportFailure(err)
	}

	fmt.Println(output.Transit(board))
	return nil
}
