package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bq/internal/config"
	"bq/internal/core"
	"bq/internal/render"
)

func newAddCmd() *cobra.Command {
	var (
		category string
		account  string
		income   bool
		dateStr  string
	)

	cmd := &cobra.Command{
		Use:   "add AMOUNT LABEL",
		Short: "Add an expense or income",
		Example: `  bq add 50 "Coffee and snacks" -c food
  bq add 1500 "Monthly salary" -c salary --income
  bq add 25.50 "Taxi ride" -c taxi -d 2025-01-03`,
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

			cfg := config.Load(config.Path())
			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()
			ctx := cmd.Context()

			var acc core.Match
			if account != "" {
				acc, err = findAccount(ctx, repo, account)
			} else {
				acc, err = repo.DefaultAccount(ctx, cfg.DefaultAccount)
			}
			if err != nil {
				return err
			}

			var categoryID *int64
			categoryName := ""
			if category != "" {
				cat, err := findCategory(ctx, repo, category)
				if err != nil {
					return err
				}
				categoryID = &cat.ID
				categoryName = cat.Name
			} else if cat, err := defaultCategory(ctx, repo, cfg.DefaultCategory); err != nil {
				return err
			} else if cat != nil {
				categoryID = &cat.ID
				categoryName = cat.Name
			}

			if _, err := repo.InsertRecord(ctx, core.NewRecord{
				Label:      label,
				Amount:     amount,
				Date:       date,
				AccountID:  acc.ID,
				CategoryID: categoryID,
				IsIncome:   income,
			}); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.AddedLine(amount, label, categoryName, acc.Name, income))

			if cfg.ShowBalanceAfterAdd {
				balance, err := repo.CurrentBalance(ctx, acc.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s balance: %s\n", acc.Name, render.Bold(render.Amount(balance)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "category name (partial match OK)")
	cmd.Flags().StringVarP(&account, "account", "a", "", "account name (partial match OK)")
	cmd.Flags().BoolVarP(&income, "income", "i", false, "mark as income instead of expense")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "date (YYYY-MM-DD), defaults to today")
	return cmd
}
