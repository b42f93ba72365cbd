package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete (<url> | <id> <token>)",
		Short: "Delete webhook",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.buildApp(args)
			if err != nil {
				return mapError(err, opts.debug)
			}

			if err := app.client.Delete(cmd.Context(), app.url); err != nil {
				return mapError(err, opts.debug)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Webhook deleted.")
			return nil
		},
	}
}
