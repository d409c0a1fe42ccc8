// Package cli wires the bq subcommands. Each handler follows the same
// shape: parse arguments, resolve names against the database, mutate or
// query, render.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// NewRootCmd builds the bq command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "bq",
		Short:   "Quick CLI companion for the Bagels expense tracker",
		Long:    "Add expenses and income to the Bagels database without opening the TUI.",
		Version: Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional, for BQ_DB_PATH / BQ_CONFIG_PATH overrides
			// during development.
			_ = godotenv.Load()
			setupLogger()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCmd(),
		newTransferCmd(),
		newLastCmd(),
		newCatsCmd(),
		newAccsCmd(),
		newBalanceCmd(),
		newUndoCmd(),
		newEditCmd(),
		newWhereCmd(),
		newConfigCmd(),
	)
	return root
}

// setupLogger keeps structured logs on stderr so command output stays
// clean. BQ_DEBUG=1 turns on query-level logging.
func setupLogger() {
	level := slog.LevelWarn
	if os.Getenv("BQ_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
