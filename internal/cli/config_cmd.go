package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bq/internal/config"
	"bq/internal/render"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage bq configuration",
		Example: `  bq config show                        # show current config
  bq config set default_account debit   # set default account
  bq config set confirm_undo false      # disable undo confirmation
  bq config reset                       # reset to defaults`,
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd(), newConfigResetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path()
			cfg := config.Load(path)
			out := cmd.OutOrStdout()

			name := func(s string) string {
				if s == "" {
					return "not set"
				}
				return s
			}
			onOff := func(b bool) string {
				if b {
					return render.Good("true")
				}
				return render.Bad("false")
			}

			render.SettingsTable(out, [][3]string{
				{config.KeyDefaultAccount, name(cfg.DefaultAccount), "account used when -a not specified"},
				{config.KeyDefaultCategory, name(cfg.DefaultCategory), "category used when -c not specified"},
				{config.KeyConfirmUndo, onOff(cfg.ConfirmUndo), "ask before deleting entries"},
				{config.KeyShowBalanceAfterAdd, onOff(cfg.ShowBalanceAfterAdd), "show account balance after adding"},
			})
			fmt.Fprintln(out)
			render.Dim(out, "Config file: %s", path)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Account and category names are validated against the database and
stored in their canonical spelling; 'none' clears them.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			path := config.Path()
			cfg := config.Load(path)
			out := cmd.OutOrStdout()

			switch key {
			case config.KeyDefaultAccount:
				if strings.EqualFold(value, "none") {
					cfg.DefaultAccount = ""
					fmt.Fprintf(out, "Cleared %s\n", key)
					break
				}
				repo, err := openRepo()
				if err != nil {
					return err
				}
				defer repo.Close()
				m, err := findAccount(cmd.Context(), repo, value)
				if err != nil {
					return err
				}
				cfg.DefaultAccount = m.Name
				fmt.Fprintf(out, "Set %s = %s\n", key, render.Bold(m.Name))

			case config.KeyDefaultCategory:
				if strings.EqualFold(value, "none") {
					cfg.DefaultCategory = ""
					fmt.Fprintf(out, "Cleared %s\n", key)
					break
				}
				repo, err := openRepo()
				if err != nil {
					return err
				}
				defer repo.Close()
				m, err := findCategory(cmd.Context(), repo, value)
				if err != nil {
					return err
				}
				cfg.DefaultCategory = m.Name
				fmt.Fprintf(out, "Set %s = %s\n", key, render.Bold(m.Name))

			case config.KeyConfirmUndo:
				b, err := config.ParseBool(value)
				if err != nil {
					return err
				}
				cfg.ConfirmUndo = b
				fmt.Fprintf(out, "Set %s = %v\n", key, b)

			case config.KeyShowBalanceAfterAdd:
				b, err := config.ParseBool(value)
				if err != nil {
					return err
				}
				cfg.ShowBalanceAfterAdd = b
				fmt.Fprintf(out, "Set %s = %v\n", key, b)

			default:
				return fmt.Errorf("unknown config key %q, valid keys: %s",
					key, strings.Join(config.ValidKeys(), ", "))
			}

			return cfg.Save(path)
		},
	}
}

func newConfigResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes && !confirm(cmd.InOrStdin(), out, "Reset all settings to defaults?") {
				render.Dim(out, "Cancelled.")
				return nil
			}
			if err := config.Reset(config.Path()); err != nil {
				return err
			}
			fmt.Fprintln(out, render.Good("Configuration reset to defaults."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}
