package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmbox/internal/catalog"
	"filmbox/internal/snapshot"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var categoryFlag string
	var sortFlag string
	var cachedFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog records",
		Long: "List catalog records, optionally filtered by category. " +
			"Sorting reorders the locally cached snapshot and never contacts the service; " +
			"--cached skips the fetch entirely.",
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := snapshot.ParseOrder(sortFlag)
			if err != nil {
				return err
			}

			snap, err := ctx.loadSnapshot()
			if err != nil {
				return err
			}

			if !cachedFlag {
				records, err := fetchList(cmd, ctx, categoryFlag)
				if err != nil {
					return err
				}
				if err := snap.Replace(records); err != nil {
					return err
				}
			} else if snap.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No cached records; run `filmbox list` while the service is reachable")
				return nil
			}

			records := snap.Sorted(order)
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No films in the catalog")
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), renderTable(recordHeaders, recordRows(records), recordAligns))
			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d films\n", len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "All", "Category filter (All for everything)")
	cmd.Flags().StringVar(&sortFlag, "sort", "", "Client-side sort: year, runtime, or name")
	cmd.Flags().BoolVar(&cachedFlag, "cached", false, "Use the last fetched snapshot without contacting the service")
	return cmd
}

// fetchList loads records from the service. The unfiltered list uses the
// startup retry policy: a fixed number of attempts with a fixed delay,
// reporting progress between attempts.
func fetchList(cmd *cobra.Command, ctx *commandContext, category string) ([]catalog.Record, error) {
	c, err := ctx.newClient()
	if err != nil {
		return nil, err
	}

	if category != "" && category != "All" {
		records, err := c.ByCategory(cmd.Context(), category)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", category, err)
		}
		return records, nil
	}

	records, err := c.ListWithRetry(cmd.Context(), ctx.retryPolicy(), func(attempt, attempts int, _ error) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Retrying... (attempt %d/%d)\n", attempt, attempts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to catalog service: %w", err)
	}
	return records, nil
}
