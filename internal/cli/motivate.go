package cli

import (
	"fmt"

	"github.com/fjnwajei/story-reader-app/internal/library"

	"github.com/spf13/cobra"
)

// NewMotivateCommand creates the motivate command.
func NewMotivateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "motivate",
		Short: "Print a daily quote, an inspirational story and a boost",
		Long: `Print a daily quote, an inspirational story and a boost.

The content is fixed and picked at random on every run; nothing is
fetched from or stored on the server.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Quote of the day: %s\n", library.RandomQuote())
			fmt.Fprintf(out, "Inspiration: %s\n", library.RandomStory())
			fmt.Fprintf(out, "Boost: %s\n", library.RandomBoost())
			return nil
		},
	}

	return cmd
}
