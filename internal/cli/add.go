package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Title string
	Text  string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "add",
		Short:         "Add a new story to the library",
		Args:          cobra.NoArgs,
		Example:       `  reader add --title "The Clockwork Garden" --text "In a city of brass..."`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Title == "" || opts.Text == "" {
				return fmt.Errorf("both --title and --text are required")
			}

			session := opts.Session()
			story, err := session.Create(cmd.Context(), opts.Title, opts.Text)
			if err != nil {
				return fmt.Errorf("failed to save story, please try again: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved story %d: %s\n", story.ID, story.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "story title")
	cmd.Flags().StringVar(&opts.Text, "text", "", "full story text")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}
