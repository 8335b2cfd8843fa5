// Command main is the entry point for the terminal reader client.
package main

import (
	"fmt"
	"os"

	"github.com/fjnwajei/story-reader-app/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
