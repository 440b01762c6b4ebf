package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/picodino/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available backends",
	Long:  `Shows every front-end the game can run on.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	backends := registry.List()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available backends:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range backends {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, b := range backends {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, b.ID, b.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'picodino play --backend <id>' to use one.")
}
