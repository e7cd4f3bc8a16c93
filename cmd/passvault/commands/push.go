package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Push notification registration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "register <token>",
		Short: "Register a push notification token for this installation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			if err := wire.Push.PutDeviceToken(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "registered")
			return nil
		},
	})
	return cmd
}
