// Package config provides YAML-based configuration loading for l1t.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/l1t/internal/core"
)

// Config contains all configuration for l1t.
type Config struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Display DisplayConfig `yaml:"display"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// LevelsConfig defines where levels come from.
type LevelsConfig struct {
	Dir   string `yaml:"dir"`   // User level directory, merged over the builtin pack
	Start string `yaml:"start"` // Level ID to start at; empty means first uncompleted
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	CellWidth    int           `yaml:"cell_width"`    // Terminal columns per cell, 1 or 2
	ShowBeams    bool          `yaml:"show_beams"`    // Draw beam paths
	OutcomeDelay time.Duration `yaml:"outcome_delay"` // Pause before the win/loss message
	BeamColor    string        `yaml:"beam_color"`    // Color name, see core.ParseColor
	Theme        string        `yaml:"theme"`         // Menu theme: default or mono
}

// StorageConfig defines progress persistence.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig defines the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Display.CellWidth < 1 || c.Display.CellWidth > 2 {
		return fmt.Errorf("config: display.cell_width must be 1 or 2, got %d", c.Display.CellWidth)
	}
	if c.Display.OutcomeDelay < 0 {
		return fmt.Errorf("config: display.outcome_delay must not be negative, got %s", c.Display.OutcomeDelay)
	}
	if _, ok := platformcore.ParseColor(c.Display.BeamColor); !ok {
		return fmt.Errorf("config: display.beam_color: unknown color %q", c.Display.BeamColor)
	}
	switch c.Display.Theme {
	case "", "default", "mono", "monochrome":
	default:
		return fmt.Errorf("config: display.theme: unknown theme %q", c.Display.Theme)
	}
	if c.Storage.DBPath == "" {
		return fmt.Errorf("config: storage.db_path must be set")
	}
	if c.Server.IdleTimeout < 0 {
		return fmt.Errorf("config: server.idle_timeout must not be negative, got %s", c.Server.IdleTimeout)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

// Runtime returns the game runtime config for a screen of w x h characters.
func (c Config) Runtime(w, h int) platformcore.RuntimeConfig {
	rc := platformcore.DefaultConfig()
	rc.ScreenW = w
	rc.ScreenH = h
	rc.CellWidth = c.Display.CellWidth
	rc.ShowBeams = c.Display.ShowBeams
	rc.OutcomeDelay = c.Display.OutcomeDelay
	if color, ok := platformcore.ParseColor(c.Display.BeamColor); ok {
		rc.BeamColor = color
	}
	return rc
}

// LogLevel returns the configured log level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
