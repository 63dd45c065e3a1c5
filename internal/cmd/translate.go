package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/querylens/querylens/internal/assets/catalog"
	"github.com/querylens/querylens/internal/config"
	"github.com/querylens/querylens/internal/core"
	"github.com/querylens/querylens/internal/core/retry"
	"github.com/querylens/querylens/internal/core/source"
	"github.com/querylens/querylens/internal/core/validate"
	"github.com/querylens/querylens/internal/observability"
	"github.com/querylens/querylens/internal/output"
)

var translateCmd = &cobra.Command{
	Use:   "translate [text] [target-lang]",
	Short: "Translate text to another language",
	Long: `Translate text to a target language. Runs against the embedded
phrase table by default; set translate.live (or --live) to call the
LibreTranslate API, with retry and exponential backoff on transient
failures. Pass "list" (or run "translate list") to see supported language
codes.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runTranslate,
}

var translateLive bool

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().BoolVar(&translateLive, "live", false, "call the real LibreTranslate endpoint instead of the embedded phrase table")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	var text, targetLang string
	switch len(args) {
	case 2:
		text, targetLang = args[0], args[1]
	case 1:
		if strings.EqualFold(strings.TrimSpace(args[0]), "list") {
			fmt.Println(output.Languages(catalog.Languages()))
			return nil
		}
		text = args[0]
		targetLang = promptTargetLang()
		if targetLang == "" {
			return nil // user asked for the language list instead
		}
	default:
		fmt.Println()
		fmt.Println(strings.Repeat("=", 75))
		fmt.Printf("%*s\n", (75+len("TRANSLATION SERVICE"))/2, "TRANSLATION SERVICE")
		fmt.Println(strings.Repeat("=", 75))
		fmt.Println("\nEnter the text you want to translate (or 'list' to see languages):")
		text = promptLine("> ")
		if strings.EqualFold(text, "list") {
			fmt.Println(output.Languages(catalog.Languages()))
			return nil
		}
		targetLang = promptTargetLang()
		if targetLang == "" {
			return nil
		}
	}

	req, err := validate.Translate(text, targetLang)
	if err != nil {
		return reportFailure(err)
	}

	cfg := config.GetConfig()
	var src source.TranslateSource = source.TranslateMock{}
	if translateLive || cfg.TranslateLive() {
		src = &source.TranslateLive{
			Client:   httpClient(cfg.Translate.Timeout),
			Endpoint: cfg.Translate.Endpoint,
			Logger:   observability.CLILogger,
		}
	}

	policy := retry.DefaultPolicy()
	if cfg.Translate.MaxRetries >= 0 {
		policy.MaxRetries = cfg.Translate.MaxRetries
	}
	if cfg.Translate.BaseDelay > 0 {
		policy.BaseDelay = cfg.Translate.BaseDelay
	}
	policy.Notify = func(attempt int, delay time.Duration, err error) {
		fmt.Printf("⏳ Attempt %d failed, retrying in %gs...\n", attempt, delay.Seconds())
	}

	fmt.Println("\n🔄 Translating...")
	result, attempts, err := retry.Do(cmd.Context(), policy,
		func(ctx context.Context) (*core.Translation, error) {
			return src.Fetch(ctx, req)
		})
	if err != nil {
		return reportFailure(err)
	}

	fmt.Println(output.Translation(result, req.Text, req.TargetLang, attempts))
	return nil
}

func promptTargetLang() string {
	fmt.Println("\nEnter target language code (e.g., 'es', 'fr', 'de', 'ja'):")
	fmt.Println("(Type 'list' to see all supported languages)")
	lang := promptLine("> ")
	if strings.EqualFold(lang, "list") {
		fmt.Println(output.Languages(catalog.Languages()))
		return ""
	}
	return lang
}
