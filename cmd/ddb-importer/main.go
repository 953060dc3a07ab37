// Package main is the entry point for the ddb-importer CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/rpg-importer/internal/config"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	storeOverride string
)

var rootCmd = &cobra.Command{
	Use:   "ddb-importer",
	Short: "Import D&D Beyond character features",
	Long: `ddb-importer turns D&D Beyond character exports into feature records.
Racial traits, class and subclass features, feats and the background are
merged into one deduplicated list.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if storeOverride != "" {
			loaded.Store = storeOverride
			if err := loaded.Validate(); err != nil {
				return err
			}
		}

		l, err := loaded.NewLogger()
		if err != nil {
			return err
		}

		cfg = loaded
		logger = l
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeOverride, "store", "", "import store: none, redis or sqlite (overrides DDB_STORE)")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(repairCmd)
}
