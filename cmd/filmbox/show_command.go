package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single record's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			c, err := ctx.newClient()
			if err != nil {
				return err
			}
			rec, err := c.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-12s %d\n", "ID:", rec.ID)
			fmt.Fprintf(out, "%-12s %s\n", "Name:", displayOr(rec.Name, placeholder))
			fmt.Fprintf(out, "%-12s %s\n", "Director:", displayOr(rec.Director, placeholder))
			fmt.Fprintf(out, "%-12s %s\n", "Year:", displayOr(rec.Year, placeholder))
			fmt.Fprintf(out, "%-12s %s\n", "Category:", displayOr(rec.Category, placeholder))
			if rec.Runtime > 0 {
				fmt.Fprintf(out, "%-12s %d min\n", "Runtime:", rec.Runtime)
			}
			if rec.Description != "" {
				fmt.Fprintf(out, "%-12s %s\n", "Description:", rec.Description)
			}
			if rec.CreatedAt != "" {
				fmt.Fprintf(out, "%-12s %s\n", "Added:", createdAtDisplay(rec.CreatedAt))
			}
			return nil
		},
	}
}

// createdAtDisplay humanizes the creation timestamp when it parses,
// otherwise shows the stored value as-is.
func createdAtDisplay(value string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.999999"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return humanize.Time(ts)
		}
	}
	return value
}
