package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose bool

	log *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "rollscan",
	Short: "Find content-defined chunk boundaries in files",
	Long: `rollscan splits files into variable-length chunks at boundaries chosen
by a rolling hash of the local content, so identical byte runs produce
identical chunks regardless of insertions or deletions elsewhere. It can also
prefer semantically meaningful cut points through a vocabulary of trigger
words.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

func setupLogger(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	log = logger.Sugar()

	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
