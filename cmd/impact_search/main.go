// Package main provides the entry point for the Impact Search server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/impact-search/internal/config"
	"github.com/jonathan/impact-search/internal/observability"
)

// app carries state resolved before any subcommand runs
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "impact_search",
		Short: "Impact Search query compiler",
		Long: "Impact Search turns free-text searches for skilled volunteers into structured " +
			"filters over closed skill and cause vocabularies, using an LLM agent when configured " +
			"and deterministic keyword matching otherwise.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = a.logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = a.logFormat
			}

			logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ./impact-search.yaml if present)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", config.DefaultLogFormat, "Log format (json, console)")

	root.AddCommand(
		newServeCmd(a),
		newCompileCmd(a),
		newVocabularyCmd(),
		newMigrateCmd(a),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
