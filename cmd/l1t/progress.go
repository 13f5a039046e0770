package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/l1t/internal/storage"
)

var (
	flagAll    bool
	flagReset  bool
	flagRecent int
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show completed levels and best move counts",
	Long: `Display, per level, whether you completed it, your best move count and
how many times you won it.

Examples:
  l1t progress
  l1t progress --all
  l1t progress --recent 10
  l1t progress --reset`,
	Args: cobra.NoArgs,
	Run:  runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagAll, "all", false, "Aggregate over all players")
	progressCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete your progress")
	progressCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list the N latest completions")
}

func runProgress(_ *cobra.Command, _ []string) {
	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(e.cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	player := playerName()
	if flagReset {
		if err := store.ClearProgress(player); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Progress of %s cleared.\n", player)
		return
	}

	scope := player
	if flagAll {
		scope = ""
	}

	stats, err := store.Stats(scope)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving progress: %v\n", err)
		os.Exit(1)
	}
	byLevel := make(map[string]storage.LevelStats, len(stats))
	for _, st := range stats {
		byLevel[st.LevelID] = st
	}

	if flagAll {
		fmt.Println("Progress - all players")
	} else {
		fmt.Printf("Progress - %s\n", player)
	}
	fmt.Println()

	fmt.Printf("  %-3s  %-24s  %-4s  %-5s  %-4s  %s\n", "#", "Level", "Done", "Best", "Wins", "Last")
	fmt.Printf("  %-3s  %-24s  %-4s  %-5s  %-4s  %s\n", "-", "-----", "----", "----", "----", "----")

	completed := 0
	for i, lvl := range e.levels {
		st, ok := byLevel[lvl.ID]
		if !ok {
			fmt.Printf("  %-3d  %-24s  %-4s  %-5s  %-4s  %s\n", i+1, lvl.Title(), "", "-", "0", "-")
			continue
		}
		completed++
		fmt.Printf("  %-3d  %-24s  %-4s  %-5d  %-4d  %s\n", i+1, lvl.Title(), "✓",
			st.BestMoves, st.Completions, st.LastCompleted.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("%d/%d levels completed.\n", completed, len(e.levels))

	if flagRecent > 0 {
		recent, err := store.Recent(scope, flagRecent)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving completions: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Println("Recent completions:")
		for _, c := range recent {
			fmt.Printf("  %s  %-12s  %-20s  %d moves\n", c.CreatedAt.Format("2006-01-02 15:04"), c.Player, c.LevelID, c.Moves)
		}
	}
}
