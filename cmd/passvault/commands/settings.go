package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passvault/internal/domain"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change account settings",
	}
	cmd.AddCommand(settingsTimeoutCmd(), settingsActionCmd())
	return cmd
}

// settings timeout [value]: print or store the vault timeout.
func settingsTimeoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeout [value]",
		Short: "Show or set the vault timeout (immediately, 1m, 5m, 30m, 1h, 4h, restart, never, or minutes)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := activeUser()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				timeout, err := domain.ParseVaultTimeout(args[0])
				if err != nil {
					return err
				}
				if err := wire.Settings.StoreVaultTimeout(userID, timeout); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Vault timeout set to %s\n", timeout)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), wire.Settings.VaultTimeoutState(userID).Value())
			return nil
		},
	}
}

// settings action [lock|logout]: print or store the vault timeout action.
func settingsActionCmd() *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "action [lock|logout]",
		Short: "Show or set what happens when the vault times out",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := activeUser()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case reset:
				if err := wire.Settings.StoreVaultTimeoutAction(userID, nil); err != nil {
					return err
				}
				fmt.Fprintln(out, "Vault timeout action reset")
			case len(args) == 1:
				action, err := domain.ParseVaultTimeoutAction(args[0])
				if err != nil {
					return err
				}
				if err := wire.Settings.StoreVaultTimeoutAction(userID, &action); err != nil {
					return err
				}
				fmt.Fprintf(out, "Vault timeout action set to %s\n", action)
			default:
				action := wire.Settings.VaultTimeoutActionState(userID).Value()
				if wire.Settings.IsVaultTimeoutActionSet(userID) {
					fmt.Fprintln(out, action)
				} else {
					fmt.Fprintf(out, "%s (default)\n", action)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "forget the stored action")
	return cmd
}
