package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var yesFlag bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a film from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
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

			if !yesFlag {
				fmt.Fprintf(cmd.OutOrStdout(), "Are you sure you want to delete %q? [y/N] ", rec.Name)
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			deleted, err := c.Delete(cmd.Context(), args[0])
			if err != nil {
				// The cached snapshot stays as it was.
				return fmt.Errorf("failed to delete film: %w", err)
			}
			name := args[0]
			if deleted != nil {
				name = deleted.Name
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", name)

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

	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
