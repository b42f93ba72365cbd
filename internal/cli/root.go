// Package cli wires the webhook operations onto the command surface:
// get, edit, delete, and send, each taking either a full webhook URL or
// an (id, token) pair.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

type options struct {
	debug      bool
	configPath string
}

// NewRootCmd creates the root command for stoat-wh.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "stoat-wh",
		Short:         "Manage and send messages via Stoat webhooks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Show raw API output and full error JSON")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config file (default: ~/.config/stoat-wh/config.yaml)")

	cmd.AddCommand(newGetCmd(opts))
	cmd.AddCommand(newEditCmd(opts))
	cmd.AddCommand(newDeleteCmd(opts))
	cmd.AddCommand(newSendCmd(opts))

	return cmd
}

// Execute runs the command tree. The returned error is either an
// *ExitError carrying the process exit code or a usage-level error.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
