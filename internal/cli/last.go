package cli

import (
	"github.com/spf13/cobra"

	"bq/internal/render"
)

func newLastCmd() *cobra.Command {
	var (
		num     int
		showAll bool
	)

	cmd := &cobra.Command{
		Use:   "last",
		Short: "Show recent records",
		Example: `  bq last           # last 10 records
  bq last -n 20     # last 20 records
  bq last --all     # all records`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()

			limit := num
			if showAll {
				limit = 0
			}
			recs, err := repo.RecentRecords(cmd.Context(), limit)
			if err != nil {
				return err
			}
			render.RecordsTable(cmd.OutOrStdout(), recs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&num, "num", "n", 10, "number of records to show")
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "show all records")
	return cmd
}
