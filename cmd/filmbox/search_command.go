package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"filmbox/internal/config"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var exactFlag bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search films by name or director",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				// Rejected locally; no request is made.
				return fmt.Errorf("please enter a film name or director")
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if exactFlag {
				cfg.Client.SearchMode = config.SearchModeExact
			}

			c, err := ctx.newClient()
			if err != nil {
				return err
			}

			records, err := c.Search(cmd.Context(), query)
			if err != nil || len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No results found")
				return nil
			}

			snap, err := ctx.loadSnapshot()
			if err != nil {
				return err
			}
			if err := snap.Replace(records); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderTable(recordHeaders, recordRows(records), recordAligns))
			fmt.Fprintf(cmd.OutOrStdout(), "Found %d match(es)\n", len(records))
			return nil
		},
	}

	cmd.Flags().BoolVar(&exactFlag, "exact", false, "Match the film name exactly instead of substring search")
	return cmd
}
