package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a story from the library",
		Long: `Delete a story from the library.

Deletion is idempotent on the server: removing an id that does not exist
still succeeds.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil || id == 0 {
				return fmt.Errorf("invalid story id %q", args[0])
			}

			session := rootOpts.Session()
			if err := session.Delete(cmd.Context(), uint(id)); err != nil {
				return fmt.Errorf("deleting story %d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted story %d\n", id)
			return nil
		},
	}

	return cmd
}
