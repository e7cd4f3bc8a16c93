package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"passvault/internal/datastate"
	"passvault/internal/domain"
	"passvault/internal/network"
)

// serverStatus is what the status command reports once both calls settle.
type serverStatus struct {
	Version     string
	KnownDevice bool
}

func (s serverStatus) String() string {
	return fmt.Sprintf("server %s, known device %t", s.Version, s.KnownDevice)
}

// status <email> <device-id>: fetch config and device state concurrently and
// print the combined state.
func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <email> <device-id>",
		Short: "Fetch server config and known-device state together",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			var (
				cfgState   datastate.DataState[domain.ServerConfig]
				knownState datastate.DataState[bool]
			)
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				cfgState = wire.ServerConfig.Refresh(gctx)
				return nil
			})
			g.Go(func() error {
				known, err := wire.Devices.GetIsKnownDevice(gctx, args[0], domain.DeviceID(args[1]))
				knownState = network.ToDataState(known, err, nil)
				return nil
			})
			_ = g.Wait()

			combined := datastate.Combine(cfgState, knownState,
				func(cfg domain.ServerConfig, known bool) serverStatus {
					return serverStatus{Version: cfg.Version, KnownDevice: known}
				})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, combined)
			if c := wire.Circumstances.SpecialCircumstance(); c != nil {
				fmt.Fprintf(out, "Special circumstance: %+v\n", c)
			}
			return stateErr(combined.Kind(), combined.Err())
		},
	}
}

// stateErr turns a failed load state into a command error so the exit status
// reflects it. NoNetwork carries no error of its own.
func stateErr(kind datastate.Kind, err error) error {
	if kind == datastate.KindNoNetwork {
		return network.ErrNoNetwork
	}
	return err
}
