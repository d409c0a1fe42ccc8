package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bq/internal/config"
	"bq/internal/core"
	"bq/internal/render"
)

func newUndoCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Delete the last entry",
		Long: `Deletes the most recently created record, regardless of its date.
Shows the entry first and asks for confirmation.`,
		Example: `  bq undo       # delete last entry (with confirmation)
  bq undo -y    # delete without asking`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(config.Path())
			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			last, err := repo.LastRecord(ctx, 0)
			if errors.Is(err, core.ErrNotFound) {
				render.Dim(out, "No records to delete.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Last entry: %s\n", render.RecordSummary(last))

			if !yes && cfg.ConfirmUndo {
				if !confirm(cmd.InOrStdin(), out, "Delete this entry?") {
					render.Dim(out, "Cancelled.")
					return nil
				}
			}

			if err := repo.DeleteRecord(ctx, last.ID); err != nil {
				return err
			}
			fmt.Fprintln(out, render.Good("Deleted."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}
