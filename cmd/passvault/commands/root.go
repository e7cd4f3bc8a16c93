package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"passvault/internal/app"
	"passvault/internal/domain"
	"passvault/internal/observability/logger"
	"passvault/internal/services/circumstance"
)

// requestTimeout bounds each command's network work.
const requestTimeout = 30 * time.Second

var (
	home      string
	serverURL string
	verbose   bool

	shareText    string
	shareSubject string
	shareFile    string

	wire *app.Wire
)

// Execute runs the root command with the process arguments.
func Execute() error {
	return newRoot(os.Stdin, os.Stdout).Execute()
}

func newRoot(in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "passvault",
		Short:         "Password manager client data layer CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.Server.Base = serverURL
			}
			if verbose {
				cfg.Log.Env, cfg.Log.Level = "dev", "debug"
			}
			logger.Init(cfg.Log)

			w, err := app.NewWire(cfg, app.Options{})
			if err != nil {
				return err
			}
			if c := circumstance.FromShareArgs(shareSubject, shareText, fileName(shareFile), shareFile); c != nil {
				w.Circumstances.SetSpecialCircumstance(c)
			}
			wire = w

			ctx := logger.ToContext(cmd.Context(), logger.Named("cli").With(logger.Op(cmd.Name())))
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if wire != nil {
				wire.Close()
			}
			_ = logger.Sync()
		},
	}
	root.SetIn(in)
	root.SetOut(out)

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.passvault)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "server base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	root.PersistentFlags().StringVar(&shareText, "share-text", "", "start with text shared for a new Send")
	root.PersistentFlags().StringVar(&shareSubject, "share-subject", "", "subject of --share-text")
	root.PersistentFlags().StringVar(&shareFile, "share-file", "", "start with a file shared for a new Send")

	root.AddCommand(
		configCmd(),
		deviceCmd(),
		pushCmd(),
		eventsCmd(),
		settingsCmd(),
		pinCmd(),
		statusCmd(),
	)
	return root
}

// withTimeout returns the command context bounded by requestTimeout.
func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, requestTimeout)
}

// activeUser returns the logged-in account's id.
func activeUser() (domain.UserID, error) {
	id, err := wire.AuthDisk.ActiveUserID()
	if err != nil {
		return "", fmt.Errorf("not logged in: %w", err)
	}
	return id, nil
}

func fileName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
