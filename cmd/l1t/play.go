package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/l1t/internal/l1t/levels"
	"github.com/vovakirdan/l1t/internal/platform/tui"
)

var (
	flagMenu        bool
	flagScreenshots bool
)

var playCmd = &cobra.Command{
	Use:   "play [level-id]",
	Short: "Play the level pack",
	Long: `Start playing at the first level you have not completed yet,
or at the given level.

Controls:
  WASD/Arrows  - Move (pushes blocks)
  Space        - Toggle adjacent lasers and mirrors
  R            - Restart level
  Enter        - Continue after a win or loss
  Esc          - Level menu
  ?            - Help
  Q/Ctrl+C     - Quit

Examples:
  l1t play
  l1t play 03-switchback
  l1t play --menu
  l1t play --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMenu, "menu", false, "Start in the level menu")
	playCmd.Flags().BoolVar(&flagScreenshots, "screenshots", false, "Enable Ctrl+S board screenshots")
}

func runPlay(_ *cobra.Command, args []string) {
	e, err := loadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := e.cfg.Levels.Start
	if len(args) == 1 {
		start = args[0]
		if levels.Index(e.levels, start) < 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", start)
			fmt.Fprintln(os.Stderr, "Run 'l1t list' to see available levels.")
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := e.openStore()

	runErr := tui.Run(tui.Options{
		Levels:      e.levels,
		Store:       store,
		Player:      playerName(),
		Runtime:     e.cfg.Runtime(width, height),
		StartLevel:  start,
		StartInMenu: flagMenu,
		Theme:       e.cfg.Display.Theme,
		Screenshots: flagScreenshots,
		Logger:      e.logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
