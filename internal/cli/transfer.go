package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bq/internal/core"
	"bq/internal/render"
)

func newTransferCmd() *cobra.Command {
	var (
		from    string
		to      string
		dateStr string
	)

	cmd := &cobra.Command{
		Use:   "transfer AMOUNT LABEL",
		Short: "Transfer money between accounts",
		Example: `  bq transfer 500 "Move to savings" --from debit --to savings
  bq transfer 1000 "Credit card payment" -f debit -t credit`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := core.ParseAmount(args[0])
			if err != nil {
				return err
			}
			label := args[1]

			date := time.Now()
			if dateStr != "" {
				if date, err = core.ParseDate(dateStr); err != nil {
					return err
				}
			}

			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()
			ctx := cmd.Context()

			src, err := findAccount(ctx, repo, from)
			if err != nil {
				return fmt.Errorf("source: %w", err)
			}
			dst, err := findAccount(ctx, repo, to)
			if err != nil {
				return fmt.Errorf("destination: %w", err)
			}
			if src.ID == dst.ID {
				return core.ErrSameAccount
			}

			if _, err := repo.InsertRecord(ctx, core.NewRecord{
				Label:        label,
				Amount:       amount,
				Date:         date,
				AccountID:    src.ID,
				IsTransfer:   true,
				TransferToID: &dst.ID,
			}); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), render.TransferLine(amount, label, src.Name, dst.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&from, "from", "f", "", "source account (required)")
	cmd.Flags().StringVarP(&to, "to", "t", "", "destination account (required)")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "date (YYYY-MM-DD), defaults to today")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
