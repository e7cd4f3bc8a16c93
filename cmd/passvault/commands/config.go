package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Fetch and print the server configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			s := wire.ServerConfig.Refresh(ctx)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "State: %s\n", s.Kind())
			cfg, ok := s.Data()
			if !ok {
				return stateErr(s.Kind(), s.Err())
			}
			fmt.Fprintf(out, "Version: %s\nGit hash: %s\n", cfg.Version, cfg.GitHash)
			if cfg.Server != nil {
				fmt.Fprintf(out, "Server: %s (%s)\n", cfg.Server.Name, cfg.Server.URL)
			}
			flags := make([]string, 0, len(cfg.FeatureFlags))
			for name := range cfg.FeatureFlags {
				flags = append(flags, name)
			}
			sort.Strings(flags)
			for _, name := range flags {
				fmt.Fprintf(out, "  %s = %v\n", name, cfg.FeatureFlags[name])
			}
			return stateErr(s.Kind(), s.Err())
		},
	}
}
