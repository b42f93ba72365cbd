package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEditCmd(opts *options) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "edit (<url> | <id> <token>)",
		Short: "Edit webhook",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.buildApp(args)
			if err != nil {
				return mapError(err, opts.debug)
			}

			if err := app.client.Edit(cmd.Context(), app.url, name); err != nil {
				return mapError(err, opts.debug)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Webhook updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New webhook name")

	return cmd
}
