package commands

import (
	"bufio"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// pin: enable unlock with PIN. The PIN is read from stdin; an empty line
// cancels.
func pinCmd() *cobra.Command {
	var userKey string
	var clearPin, show bool
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Enable or clear unlock with PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := activeUser()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch {
			case show:
				fmt.Fprintf(out, "Unlock with PIN: %t\n", wire.Settings.IsUnlockWithPinEnabled(userID))
				return nil
			case clearPin:
				if err := wire.Settings.ClearUnlockPin(userID); err != nil {
					return err
				}
				fmt.Fprintln(out, "Unlock with PIN disabled")
				return nil
			case userKey == "":
				return errors.New("--user-key required")
			}

			key, err := base64.StdEncoding.DecodeString(userKey)
			if err != nil {
				return fmt.Errorf("decode --user-key: %w", err)
			}

			fmt.Fprint(out, "PIN: ")
			pin, err := readLine(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if pin == "" {
				fmt.Fprintln(out, "cancelled")
				return nil
			}
			if err := wire.Settings.StoreUnlockPin(userID, pin, key); err != nil {
				return err
			}
			fmt.Fprintln(out, "Unlock with PIN enabled")
			return nil
		},
	}
	cmd.Flags().StringVar(&userKey, "user-key", "", "base64 user key to protect with the PIN")
	cmd.Flags().BoolVar(&clearPin, "clear", false, "disable unlock with PIN")
	cmd.Flags().BoolVar(&show, "status", false, "print whether unlock with PIN is enabled")
	cmd.MarkFlagsMutuallyExclusive("clear", "status", "user-key")
	return cmd
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
