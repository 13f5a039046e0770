package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long:  `Shows the builtin levels and those in the level directory, with completion marks.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(e.levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	done := make(map[string]bool)
	if store := e.openStore(); store != nil {
		ids, err := store.CompletedLevels(playerName())
		if err != nil {
			e.logger.Warn("could not load progress", "err", err)
		}
		for _, id := range ids {
			done[id] = true
		}
		store.Close()
	}

	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range e.levels {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	fmt.Printf("     %-*s  %-24s  %s\n", maxIDLen, "ID", "Title", "Author")
	fmt.Printf("     %-*s  %-24s  %s\n", maxIDLen, "--", "-----", "------")

	completed := 0
	for _, lvl := range e.levels {
		mark := " "
		if done[lvl.ID] {
			mark = "✓"
			completed++
		}
		fmt.Printf("  %s  %-*s  %-24s  %s\n", mark, maxIDLen, lvl.ID, lvl.Title(), lvl.Author)
	}

	fmt.Println()
	fmt.Printf("%d/%d completed. Run 'l1t play <id>' to play a level.\n", completed, len(e.levels))
}
