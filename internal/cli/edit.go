package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bq/internal/core"
	"bq/internal/render"
)

func newEditCmd() *cobra.Command {
	var (
		num       int
		amountStr string
		label     string
		category  string
		account   string
		dateStr   string
		toIncome  bool
		toExpense bool
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a recent entry",
		Long:  "Edits the last entry by default; use -n to reach older ones (1=last, 2=second-last, ...).",
		Example: `  bq edit --amount 75                    # fix amount of last entry
  bq edit --label "Correct description"  # fix label
  bq edit -c groceries                   # change category
  bq edit -n 2 --amount 100              # edit second-to-last entry
  bq edit --income                       # change expense to income`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if toIncome && toExpense {
				return errors.New("--income and --expense are mutually exclusive")
			}
			if num < 1 {
				return fmt.Errorf("invalid position %d", num)
			}

			var changes core.RecordChanges
			if cmd.Flags().Changed("amount") {
				v, err := core.ParseAmount(amountStr)
				if err != nil {
					return err
				}
				changes.Amount = &v
			}
			if cmd.Flags().Changed("label") {
				changes.Label = &label
			}
			if cmd.Flags().Changed("date") {
				d, err := core.ParseDate(dateStr)
				if err != nil {
					return err
				}
				changes.Date = &d
			}
			if toIncome || toExpense {
				changes.IsIncome = &toIncome
			}

			needsResolve := category != "" || account != ""
			if changes.Empty() && !needsResolve {
				return fmt.Errorf("%w: specify at least one of --amount, --label, -c, -a, -d, --income/--expense", core.ErrNoFields)
			}

			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if category != "" {
				cat, err := findCategory(ctx, repo, category)
				if err != nil {
					return err
				}
				changes.CategoryID = &cat.ID
			}
			if account != "" {
				acc, err := findAccount(ctx, repo, account)
				if err != nil {
					return err
				}
				changes.AccountID = &acc.ID
			}

			target, err := repo.LastRecord(ctx, num-1)
			if errors.Is(err, core.ErrNotFound) {
				render.Dim(out, "No record found at position %d.", num)
				return nil
			}
			if err != nil {
				return err
			}

			render.Dim(out, "Was: %s", render.RecordSummary(target))

			if err := repo.UpdateRecord(ctx, target.ID, changes); err != nil {
				return err
			}

			updated, err := repo.GetRecord(ctx, target.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", render.Good("Now:"), render.RecordSummary(updated))
			return nil
		},
	}

	cmd.Flags().IntVarP(&num, "num", "n", 1, "which entry to edit (1=last, 2=second-last, ...)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&label, "label", "", "new label/description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category (partial match OK)")
	cmd.Flags().StringVarP(&account, "account", "a", "", "new account (partial match OK)")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "new date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&toIncome, "income", false, "change to income")
	cmd.Flags().BoolVar(&toExpense, "expense", false, "change to expense")
	return cmd
}
