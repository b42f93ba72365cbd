package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjornmorten/stoat-wh/internal/webhook"
)

func newSendCmd(opts *options) *cobra.Command {
	var (
		content      string
		username     string
		avatar       string
		flagsVal     int
		replies      []string
		embeds       []string
		interactions string
	)

	cmd := &cobra.Command{
		Use:   "send (<url> | <id> <token>)",
		Short: "Send a message through a webhook",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.buildApp(args)
			if err != nil {
				return mapError(err, opts.debug)
			}

			builder := webhook.NewMessagePayloadBuilder().
				WithContent(webhook.ResolveContent(readStdin(), content)).
				WithReplies(replies).
				WithMasquerade(username, avatar)

			if cmd.Flags().Changed("flags") {
				builder.WithFlags(flagsVal)
			}

			for _, embed := range embeds {
				value, err := webhook.ResolveJSONValue(embed)
				if err != nil {
					return Exitf(ExitParse, "Error parsing embed: %v", err)
				}
				if value.OK {
					builder.AddEmbed(value.Value)
				}
			}

			if interactions != "" {
				value, err := webhook.ResolveJSONValue(interactions)
				if err != nil {
					return Exitf(ExitParse, "Error parsing interactions: %v", err)
				}
				if value.OK {
					builder.WithInteractions(value.Value)
				}
			}

			payload, err := builder.Build()
			if err != nil {
				return Exitf(ExitValidation, "Error: %s.", err)
			}

			if err := app.client.Send(cmd.Context(), app.url, payload); err != nil {
				return mapError(err, opts.debug)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Message sent.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "Message text (stdin overrides this)")
	cmd.Flags().StringVar(&username, "username", "", "Masquerade display name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Masquerade avatar URL")
	cmd.Flags().IntVar(&flagsVal, "flags", 0, "Message flag bitfield")
	cmd.Flags().StringArrayVar(&replies, "reply", nil, "Message ID to reply to (repeatable)")
	cmd.Flags().StringArrayVar(&embeds, "embed", nil, "Embed JSON string or file path (repeatable, only one supported by the API)")
	cmd.Flags().StringVar(&interactions, "interactions", "", "Interactions JSON string or file path")

	return cmd
}
