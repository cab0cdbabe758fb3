package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered mode. The one marked * is played by default.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	def := defaultGameID()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Available modes:")
	fmt.Println()
	fmt.Printf("    %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("    %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		mark := " "
		if g.ID == def {
			mark = "*"
		}
		fmt.Printf("  %s %-*s  %s\n", mark, maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tetris play <id>' to play a mode.")
}
