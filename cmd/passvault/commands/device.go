package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"passvault/internal/domain"
)

func deviceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "device",
		Short: "Device trust operations",
	}
	cmd.AddCommand(deviceKnownCmd(), deviceTrustCmd())
	return cmd
}

// device known <email> <device-id>: report whether the device is known.
func deviceKnownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "known <email> <device-id>",
		Short: "Ask whether a device has logged in to an account before",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			known, err := wire.Devices.GetIsKnownDevice(ctx, args[0], domain.DeviceID(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), known)
			return nil
		},
	}
}

// device trust: upload encrypted keys that make this installation trusted.
func deviceTrustCmd() *cobra.Command {
	var userKey, publicKey, privateKey string
	cmd := &cobra.Command{
		Use:   "trust",
		Short: "Upload trusted-device keys for this installation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			resp, err := wire.Devices.TrustDevice(ctx, wire.AppID, userKey, publicKey, privateKey)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Trusted device %s (%s)\n", resp.ID, resp.Identifier)
			return nil
		},
	}
	cmd.Flags().StringVar(&userKey, "user-key", "", "user key encrypted with the device public key")
	cmd.Flags().StringVar(&publicKey, "public-key", "", "device public key encrypted with the user key")
	cmd.Flags().StringVar(&privateKey, "private-key", "", "device private key encrypted with the device key")
	_ = cmd.MarkFlagRequired("user-key")
	_ = cmd.MarkFlagRequired("public-key")
	_ = cmd.MarkFlagRequired("private-key")
	return cmd
}
