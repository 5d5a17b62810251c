package main

import (
	"fmt"
	"leadgen/internal/config"
	"leadgen/pkg/client"

	"github.com/spf13/cobra"
)

func printTrigger(res client.TriggerResult) {
	fmt.Printf("%s: %s (refresh in %s)\n", res.Webhook, res.Message, res.RefreshAfter()) //nolint: forbidigo
}

func triggerCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trigger",
		Short: "Starts the external search and email generation workflows",
	}
	addClientFlags(cmd)

	search := &cobra.Command{
		Use:   "search",
		Short: "Runs a search for the account's keywords and locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := getClient(cmd, cfg)

			if preview, _ := cmd.Flags().GetBool("preview"); preview {
				p, err := c.PreviewSearch(cmd.Context())
				if err != nil {
					return err //nolint: wrapcheck
				}

				return printJSON(p)
			}

			repeat, _ := cmd.Flags().GetBool("repeat")
			res, err := c.TriggerSearch(cmd.Context(), repeat)
			if err != nil {
				return err //nolint: wrapcheck
			}
			printTrigger(res)

			return nil
		},
	}
	search.Flags().Bool("repeat", false, "Repeat combinations that were already searched")
	search.Flags().Bool("preview", false, "Only print the combinations that would run")

	emails := &cobra.Command{
		Use:   "emails LEAD_ID...",
		Short: "Generates email drafts for the given leads",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseLeadIDs(args)
			if err != nil {
				return err
			}

			res, err := getClient(cmd, cfg).GenerateEmails(cmd.Context(), ids)
			if err != nil {
				return err //nolint: wrapcheck
			}
			printTrigger(res)

			return nil
		},
	}

	cmd.AddCommand(search, emails)

	return cmd
}
