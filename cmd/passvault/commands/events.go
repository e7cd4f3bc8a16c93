package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"passvault/internal/domain"
)

func eventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Organization event reporting",
	}
	cmd.AddCommand(eventsSendCmd())
	return cmd
}

// events send <type> [org-id]: report one event.
func eventsSendCmd() *cobra.Command {
	var cipherID string
	cmd := &cobra.Command{
		Use:   "send <type> [org-id]",
		Short: "Report an organization event (type is the numeric event code)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid event type %q", args[0])
			}
			ev := domain.OrganizationEvent{
				Type:     domain.EventType(code),
				CipherID: cipherID,
				Date:     time.Now().UTC(),
			}
			if len(args) == 2 {
				ev.OrganizationID = domain.OrganizationID(args[1])
			}

			ctx, cancel := withTimeout(cmd)
			defer cancel()
			if err := wire.Events.SendOrganizationEvents(ctx, []domain.OrganizationEvent{ev}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sent")
			return nil
		},
	}
	cmd.Flags().StringVar(&cipherID, "cipher", "", "cipher the event refers to")
	return cmd
}
