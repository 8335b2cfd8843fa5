package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewReadCommand creates the read command.
func NewReadCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <id>",
		Short: "Fetch and print the full text of a story",
		Long: `Fetch and print the full text of a story.

Summaries never carry the story body, so this is always a separate fetch
by id, like opening the detail overlay in the web client.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil || id == 0 {
				return fmt.Errorf("invalid story id %q", args[0])
			}

			session := rootOpts.Session()
			story, err := session.Open(cmd.Context(), uint(id))
			if err != nil {
				return fmt.Errorf("fetching story %d: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", story.Title, story.FullText)
			return nil
		},
	}

	return cmd
}
