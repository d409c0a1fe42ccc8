package cli

import (
	"github.com/spf13/cobra"

	"bq/internal/render"
)

func newCatsCmd() *cobra.Command {
	var flat bool

	cmd := &cobra.Command{
		Use:   "cats",
		Short: "List available categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()

			cats, err := repo.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			if flat {
				render.CategoriesTable(cmd.OutOrStdout(), cats)
			} else {
				render.CategoriesTree(cmd.OutOrStdout(), cats)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "show flat list instead of tree")
	return cmd
}

func newAccsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accs",
		Short: "List available accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()

			accs, err := repo.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}
			render.AccountsTable(cmd.OutOrStdout(), accs)
			return nil
		},
	}
}
