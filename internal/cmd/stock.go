package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/querylens/querylens/internal/assets/catalog"
	"github.com/querylens/querylens/internal/config"
	"github.com/querylens/querylens/internal/core/engine"
	"github.com/querylens/querylens/internal/core/source"
	"github.com/querylens/querylens/internal/core/store"
	"github.com/querylens/querylens/internal/core/validate"
	"github.com/querylens/querylens/internal/observability"
	"github.com/querylens/querylens/internal/output"
)

var stockCmd = &cobra.Command{
	Use:   "stock [symbol]",
	Short: "Fetch a daily stock quote",
	Long: `Fetch the latest daily quote for a ticker symbol. Queries the Alpha
Vantage API when an API key is configured (ALPHAVANTAGE_API_KEY); otherwise
answers from the embedded demo quotes. Live requests are limited to 5 per
minute to match the free tier.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStock,
}

func init() {
	rootCmd.AddCommand(stockCmd)
}

func runStock(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()

	var symbol string
	if len(args) > 0 {
		symbol = strings.TrimSpace(args[0])
	} else {
		if !cfg.StockLive() {
			fmt.Printf("\nAvailable mock tickers: %s\n\n", strings.Join(catalog.TickerSymbols(), ", "))
		}
		symbol = promptLine("Enter stock ticker symbol: ")
	}

	req, err := validate.Stock(symbol)
	if err != nil {
		return reportFailure(err)
	}

	var src source.StockSource = source.StockMock{}
	if cfg.StockLive() {
		src = &source.StockLive{
			Client:  httpClient(cfg.Stock.Timeout),
			BaseURL: cfg.Stock.BaseURL,
			APIKey:  cfg.Stock.APIKey,
			Limiter: &engine.RateLimiter{
				Store: store.NewMemory(),
				Limit: engine.RateLimit{
					RequestsPerWindow: cfg.Stock.RequestsPerWindow,
					WindowDuration:    cfg.Stock.Window,
				},
			},
			Logger: observability.CLILogger,
		}
	}

	fmt.Println("\nFetching stock data...")
	quote, err := src.Fetch(cmd.Context(), req)
	if err != nil {
		return reportFailure(err)
	}

	fmt.Println(output.Stock(quote))
	return nil
}
