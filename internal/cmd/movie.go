package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/querylens/querylens/internal/config"
	"github.com/querylens/querylens/internal/core/source"
	"github.com/querylens/querylens/internal/core/validate"
	"github.com/querylens/querylens/internal/observability"
	"github.com/querylens/querylens/internal/output"
)

var movieCmd = &cobra.Command{
	Use:   "movie [title...]",
	Short: "Look up movie details",
	Long: `Look up movie details by title. Queries the OMDb API when an API key
is configured (OMDB_API_KEY); otherwise answers from the embedded demo
catalog. Multiple arguments are joined into one title.`,
	RunE: runMovie,
}

func init() {
	rootCmd.AddCommand(movieCmd)
}

func runMovie(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		title = promptLine("\nEnter the movie title: ")
	}

	req, err := validate.Movie(title)
	if err != nil {
		return reportFailure(err)
	}

	cfg := config.GetConfig()
	var src source.MovieSource = source.MovieMock{}
	if cfg.MovieLive() {
		src = &source.MovieLive{
			Client:  httpClient(cfg.Movie.Timeout),
			BaseURL: cfg.Movie.BaseURL,
			APIKey:  cfg.Movie.APIKey,
			Logger:  observability.CLILogger,
		}
	}

	fmt.Println("\nSearching for movie information...")
	info, err := src.Fetch(cmd.Context(), req)
	if err != nil {
		return reportFailure(err)
	}

	fmt.Println(output.Movie(info))
	return nil
}
