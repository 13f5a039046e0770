package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and display preferences.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	CellWidth    int           // Terminal columns per grid cell (1 or 2)
	ShowBeams    bool          // Draw beam paths; targets are lit either way
	BeamColor    Color         // Color of beam glyphs
	OutcomeDelay time.Duration // Pause before the win/loss message appears
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		CellWidth:    2,
		ShowBeams:    true,
		BeamColor:    ColorBrightRed,
		OutcomeDelay: 500 * time.Millisecond,
	}
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	LevelID     string // Current level
	LevelIndex  int    // Position of the level in the pack, 0-based
	LevelCount  int    // Levels in the pack
	Moves       int    // Board-changing turns since the last restart
	Status      string // Outcome of the current level ("in-progress", "won", "lost(death)", ...)
	LevelOver   bool   // The current level reached a terminal outcome
	Revealed    bool   // The outcome message is on screen and Confirm is accepted
	AllComplete bool   // The last level of the pack was won
}

// StepResult is returned by Game.Step() after each turn.
// Contains the updated game state and whether anything changed.
type StepResult struct {
	State   GameState
	Changed bool // The board, level or overlay changed; the view must be redrawn
}
