// Package cmd wires up the querylens command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/querylens/querylens/internal/config"
	"github.com/querylens/querylens/internal/observability"
	"github.com/querylens/querylens/internal/output"
)

var (
	cfgFile string
	verbose bool

	// Version info set by main package
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by main package to set version information.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "querylens",
	Short: "Small HTTP query utilities: movies, transit, stocks, translation",
	Long: `querylens bundles four small query utilities behind one binary:
movie details (OMDb), transit arrivals, stock quotes (Alpha Vantage) and text
translation (LibreTranslate). Each runs against canned demo data unless the
matching API key or endpoint is configured.

Use the subcommands to perform specific operations.`,
	// Failures are already printed as one-line reports; cobra must not
	// repeat them or dump usage.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ., ./config, $HOME for querylens.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Initialize CLI logger early so config loading can use it.
	observability.InitCLILogger(verbose)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName("querylens")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("QUERYLENS")
	viper.AutomaticEnv()

	config.SetDefaults()

	if err := viper.ReadInConfig(); err == nil {
		observability.CLILogger.Debug("Using config file",
			zap.String("path", viper.ConfigFileUsed()))
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		observability.CLILogger.Debug("No config file found, using defaults and environment variables")
	} else {
		observability.CLILogger.Warn("Error reading config file", zap.Error(err))
	}

	if _, err := config.Load(); err != nil {
		observability.CLILogger.Error("Failed to load configuration", zap.Error(err))
		os.Exit(1)
	}
}

// reportFailure prints the one-line error report to stdout and returns the
// error so the process exits 1. Cobra is silenced, so nothing is repeated.
func reportFailure(err error) error {
	fmt.Printf("\n%s\n\n", output.FormatError(err))
	return err
}
