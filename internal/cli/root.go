// Package cli implements the terminal reader client for the story library.
package cli

import (
	"github.com/fjnwajei/story-reader-app/internal/library"
	"github.com/fjnwajei/story-reader-app/pkg/client"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	APIURL string
}

// Session builds a reading session over the configured API server.
func (o *RootOptions) Session() *library.Session {
	return library.NewSession(client.New(o.APIURL))
}

// NewRootCommand creates the root command for the reader CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "reader",
		Short: "Terminal reader for the story library",
		Long:  "Browse, read, and add stories from a story library API server.",
	}

	cmd.PersistentFlags().StringVar(&opts.APIURL, "api-url", "http://localhost:8081", "base URL of the story library API")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewReadCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewMotivateCommand(opts))

	return cmd
}
