package main

import (
	"encoding/json"
	"fmt"
	"leadgen/internal/config"
	"leadgen/pkg/client"
	"leadgen/pkg/domain"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func parseLeadIDs(args []string) ([]domain.LeadID, error) {
	ids := make([]domain.LeadID, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid lead id %q: %w", a, err)
		}
		ids = append(ids, domain.LeadID(id))
	}

	return ids, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(v) //nolint: wrapcheck
}

func leadsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leads",
		Short: "Lists, excludes and restores leads through the API",
	}
	addClientFlags(cmd)

	list := &cobra.Command{
		Use:   "list",
		Short: "Prints one page of leads",
		RunE: func(cmd *cobra.Command, args []string) error {
			var q client.LeadQuery
			q.Page, _ = cmd.Flags().GetInt("page")
			q.PageSize, _ = cmd.Flags().GetInt("page-size")
			q.Filter.IncludeWithoutEmail, _ = cmd.Flags().GetBool("without-email")
			q.Filter.IncludeAlreadyEmailed, _ = cmd.Flags().GetBool("already-emailed")
			q.Filter.ExcludedOnly, _ = cmd.Flags().GetBool("excluded")

			page, err := getClient(cmd, cfg).ListLeads(cmd.Context(), q)
			if err != nil {
				return err //nolint: wrapcheck
			}

			return printJSON(page)
		},
	}
	list.Flags().Int("page", 1, "Page number")
	list.Flags().Int("page-size", 0, "Page size (10, 25, 50 or 100)")
	list.Flags().Bool("without-email", false, "Include leads without a valid email")
	list.Flags().Bool("already-emailed", false, "Include leads that already have a draft")
	list.Flags().Bool("excluded", false, "Show excluded leads")

	exclude := &cobra.Command{
		Use:   "exclude LEAD_ID...",
		Short: "Excludes leads and remembers their categories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseLeadIDs(args)
			if err != nil {
				return err
			}
			c := getClient(cmd, cfg)

			categories, _ := cmd.Flags().GetStringSlice("category")
			if withSelected, _ := cmd.Flags().GetBool("with-lead-categories"); withSelected {
				selected, err := c.SelectedCategories(cmd.Context(), ids)
				if err != nil {
					return err //nolint: wrapcheck
				}
				categories = append(selected, categories...)
			}
			custom, _ := cmd.Flags().GetString("custom")
			if !domain.ValidateCustomCategories(custom) {
				return fmt.Errorf("custom categories must be lowercase letters or underscores separated by commas")
			}

			n, err := c.Exclude(cmd.Context(), ids, categories, custom)
			if err != nil {
				return err //nolint: wrapcheck
			}
			fmt.Printf("%d leads excluded\n", n) //nolint: forbidigo

			return nil
		},
	}
	exclude.Flags().StringSlice("category", nil, "Category to exclude (repeatable)")
	exclude.Flags().Bool("with-lead-categories", false, "Also exclude the categories of the selected leads")
	exclude.Flags().String("custom", "", "Comma separated custom categories, e.g. plumber,electrician")

	restore := &cobra.Command{
		Use:   "restore LEAD_ID...",
		Short: "Moves excluded leads back to the active list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseLeadIDs(args)
			if err != nil {
				return err
			}

			n, err := getClient(cmd, cfg).Restore(cmd.Context(), ids)
			if err != nil {
				return err //nolint: wrapcheck
			}
			fmt.Printf("%d leads restored\n", n) //nolint: forbidigo

			return nil
		},
	}

	cmd.AddCommand(list, exclude, restore)

	return cmd
}
