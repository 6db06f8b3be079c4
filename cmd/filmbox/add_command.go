package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"filmbox/internal/client"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var form client.Form

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a film to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := form.Validate()
			if err != nil {
				// Validation failures never reach the service.
				return err
			}

			c, err := ctx.newClient()
			if err != nil {
				return err
			}

			rec, err := c.Create(cmd.Context(), draft)
			if err != nil {
				return fmt.Errorf("failed to add film: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Film added successfully (id %d)\n", rec.ID)

			// Re-fetch the full list instead of inserting optimistically.
			records, err := c.List(cmd.Context())
			if err != nil {
				return nil
			}
			snap, err := ctx.loadSnapshot()
			if err != nil {
				return nil
			}
			_ = snap.Replace(records)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "Film name (required)")
	cmd.Flags().StringVar(&form.Director, "director", "", "Director (required)")
	cmd.Flags().StringVar(&form.Year, "year", "", "Release year (required)")
	cmd.Flags().StringVar(&form.Category, "category", "", "Category (required)")
	cmd.Flags().StringVar(&form.Runtime, "runtime", "", "Runtime in minutes")
	cmd.Flags().StringVar(&form.Description, "description", "", "Description")
	return cmd
}
