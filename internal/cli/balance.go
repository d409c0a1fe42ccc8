package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bq/internal/core"
	"bq/internal/render"
)

func newBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show and manage account balances",
		Example: `  bq balance                     # show all account balances
  bq balance set debit 5000      # set debit account balance to 5000
  bq balance adjust debit 100    # add 100 to debit balance
  bq balance adjust debit -50    # subtract 50 from debit balance`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()

			rows, err := repo.AccountsWithBalances(cmd.Context())
			if err != nil {
				return err
			}
			render.BalancesTable(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.AddCommand(newBalanceSetCmd(), newBalanceAdjustCmd())
	return cmd
}

func newBalanceSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set ACCOUNT AMOUNT",
		Short: "Set an account's balance to a specific amount",
		Long:  "Adjusts the starting balance so the current balance equals the target.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := core.ParseSignedAmount(args[1])
			if err != nil {
				return err
			}

			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()
			ctx := cmd.Context()

			acc, err := findAccount(ctx, repo, args[0])
			if err != nil {
				return err
			}
			change, err := repo.SetBalance(ctx, acc.ID, target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s balance set to %s\n",
				render.Bold(acc.Name), render.Good(render.Amount(target)))
			render.Dim(out, "(starting balance adjusted: %s -> %s)",
				render.Amount(change.OldBeginning), render.Amount(change.NewBeginning))
			return nil
		},
	}
	// AMOUNT may be negative (e.g. "-50"); stop flag parsing at the
	// first positional so it is not mistaken for flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newBalanceAdjustCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust ACCOUNT DELTA",
		Short: "Adjust an account's balance by a relative amount",
		Long:  "Positive DELTA adds to the balance, negative subtracts.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := core.ParseSignedAmount(args[1])
			if err != nil {
				return err
			}

			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()
			ctx := cmd.Context()

			acc, err := findAccount(ctx, repo, args[0])
			if err != nil {
				return err
			}
			change, err := repo.AdjustBalance(ctx, acc.ID, delta)
			if err != nil {
				return err
			}

			deltaStr := render.Bad(render.Amount(delta))
			if delta >= 0 {
				deltaStr = render.Good("+" + render.Amount(delta))
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s adjusted by %s\n", render.Bold(acc.Name), deltaStr)
			fmt.Fprintf(out, "New balance: %s\n", render.Bold(render.Amount(change.Current)))
			return nil
		},
	}
	// DELTA may be negative (e.g. "-50"); stop flag parsing at the
	// first positional so it is not mistaken for flags.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
