package cli

import (
	"fmt"
	"io"

	"github.com/fjnwajei/story-reader-app/internal/library"

	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Genre    string
	Sort     string
	Status   string
	MarkRead []uint
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List story cards, filtered and sorted",
		Long: `List story cards, filtered and sorted.

Genres, likes and views are session-side demo decoration: they are
recomputed on every fetch and never stored on the server. Read marks set
with --mark-read live only for this invocation.

Example:
  reader list --genre Fantasy --sort recent --status unread`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listStories(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Genre, "genre", library.GenreAll, "genre filter (Fantasy|Adventure|Sci-Fi|All)")
	cmd.Flags().StringVar(&opts.Sort, "sort", library.SortPopular, "sort mode (popular|recent|liked)")
	cmd.Flags().StringVar(&opts.Status, "status", library.StatusAll, "read-status filter (all|read|unread)")
	cmd.Flags().UintSliceVar(&opts.MarkRead, "mark-read", nil, "story ids to mark read for this session before rendering")

	return cmd
}

func listStories(opts *ListOptions, cmd *cobra.Command) error {
	session := opts.Session()
	if err := session.Refresh(cmd.Context()); err != nil {
		return fmt.Errorf("fetching stories: %w", err)
	}

	view := session.View()
	view.Genre = opts.Genre
	view.Sort = opts.Sort
	view.Status = opts.Status

	for _, id := range opts.MarkRead {
		if !session.ToggleRead(id) {
			fmt.Fprintf(cmd.ErrOrStderr(), "no story with id %d to mark read\n", id)
		}
	}

	renderCards(cmd.OutOrStdout(), session.Cards())
	return nil
}

func renderCards(w io.Writer, cards []library.Summary) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No stories match the current filters.")
		return
	}
	for _, card := range cards {
		badge := "Unread"
		if card.Read {
			badge = "Read"
		}
		fmt.Fprintf(w, "[%d] %s (%s) [%s]\n", card.ID, card.Title, card.Genre, badge)
		fmt.Fprintf(w, "    %s\n", card.Description)
		fmt.Fprintf(w, "    %d likes · %d views\n", card.Likes, card.Views)
	}
}
