package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjornmorten/stoat-wh/internal/webhook"
)

func newGetCmd(opts *options) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "get (<url> | <id> <token>)",
		Short: "Fetch webhook info",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.buildApp(args)
			if err != nil {
				return mapError(err, opts.debug)
			}

			info, raw, err := app.client.Get(cmd.Context(), app.url)
			if err != nil {
				return mapError(err, opts.debug)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				fmt.Fprintln(out, webhook.PrettyJSON(raw))
				return nil
			}

			fmt.Fprintf(out, "Webhook ID : %s\n", info.ID)
			fmt.Fprintf(out, "Name       : %s\n", info.Name)
			fmt.Fprintf(out, "Creator    : %s\n", info.CreatorID)
			fmt.Fprintf(out, "Channel    : %s\n", info.ChannelID)
			fmt.Fprintf(out, "Permissions: %d\n", info.Permissions)
			if info.Token != nil {
				fmt.Fprintf(out, "Token      : %s\n", *info.Token)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the full webhook JSON")

	return cmd
}
