package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bq/internal/config"
	"bq/internal/render"
	"bq/internal/storage"
)

func newWhereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Show where the database and config live",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			path, err := storage.FindDBPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Database: %s\n", render.Bold(path))
			fmt.Fprintf(out, "Config:   %s\n", render.Bold(config.Path()))
			return nil
		},
	}
}
