// Package main provides the matchtips command line tool.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/matchtips/internal/config"
	"github.com/yourusername/matchtips/internal/logger"
	"github.com/yourusername/matchtips/internal/metrics"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile  string
	logLevel    string
	dumpMetrics bool
	jsonOutput  bool
	appLogger   *logrus.Logger
	cfg         *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file (default config/config.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().BoolVar(&dumpMetrics, "dump-metrics", false, "Print collected metrics in Prometheus text format on exit")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")

	rootCmd.AddCommand(scoreCmd, estimateCmd, exampleCmd, clearCmd, versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "matchtips",
	Short: "Heuristic football tips from team statistics",
	Long: `Scores a football match from average team statistics and optional bookmaker odds,
ranks the resulting tips and explains them. The estimate command derives a best
bet from a handful of past scorelines.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if !dumpMetrics || !cfg.Metrics.Enabled {
			return nil
		}
		return metrics.WriteText(cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "matchtips %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.SetOutput(os.Stderr)
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	loaded, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.App.LogLevel = logLevel
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}
	cfg = loaded
	return nil
}
