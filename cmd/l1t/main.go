// l1t is a laser-grid puzzle game for the terminal.
//
// Usage:
//
//	l1t play [level-id]    - Play, starting at the first uncompleted or given level
//	l1t list               - List levels with completion marks
//	l1t progress           - Show the completion table
//	l1t serve              - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.l1t/config.yaml, then ./configs/l1t.yaml)
//	--db <path>         - Progress database path
//	--levels <dir>      - Extra level directory
//	--log-level <lvl>   - debug, info, warn, error
//	--player <name>     - Player name for progress tracking
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/l1t/internal/config"
	"github.com/vovakirdan/l1t/internal/l1t/levels"
	"github.com/vovakirdan/l1t/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLevels   string
	flagLogLevel string
	flagPlayer   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "l1t",
	Short: "l1t - light every statue, dodge the lasers",
	Long: `l1t is a turn-based laser puzzle played in the terminal.

Push blocks, flip switches and aim mirrors until every statue is lit
by a laser beam. Do not light a zapper and do not stand in a beam.

Available commands:
  play      - Play the level pack
  list      - Show all levels
  progress  - Show completed levels and best move counts
  serve     - Start SSH server for remote play

Examples:
  l1t play
  l1t play 04-reverse
  l1t list
  l1t serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Extra level directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name (default: $USER)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// env is what every command needs: the merged config, the root logger
// and the level pack.
type env struct {
	cfg    config.Config
	logger *log.Logger
	levels []levels.Level
}

// loadEnv loads the config, applies flag overrides and loads the levels.
func loadEnv() (*env, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLevels != "" {
		cfg.Levels.Dir = flagLevels
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "l1t",
		Level:           cfg.LogLevel(),
	})

	pack, err := levels.LoadPack(cfg.Levels.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("loading levels: %w", err)
	}
	logger.Debug("levels loaded", "count", len(pack), "dir", cfg.Levels.Dir)

	return &env{cfg: cfg, logger: logger, levels: pack}, nil
}

// openStore opens the progress database. Play continues without it.
func (e *env) openStore() *storage.Store {
	store, err := storage.Open(e.cfg.Storage.DBPath)
	if err != nil {
		e.logger.Warn("could not open progress database, progress will not be saved", "path", e.cfg.Storage.DBPath, "err", err)
		return nil
	}
	return store
}

// playerName returns the --player flag, else the login name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
