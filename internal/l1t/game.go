// Package l1t provides the l1t laser puzzle game: it plays a level pack one
// session at a time and renders the board into a platform screen.
package l1t

import (
	"fmt"

	platformcore "github.com/vovakirdan/l1t/internal/core"
	"github.com/vovakirdan/l1t/internal/l1t/core"
	"github.com/vovakirdan/l1t/internal/l1t/levels"
)

// Outcome messages shown when a level ends.
const (
	MsgWon         = "YAY, You Won!"
	MsgZapper      = "Uh oh, you lit a zapper!"
	MsgDeath       = "Uh oh, you got shot by a laser beam!"
	MsgQuit        = "You gave up on this level."
	MsgAllComplete = "You've completed all levels, thanks for playing!"
)

// Game implements the l1t puzzle over an ordered level pack.
type Game struct {
	pack      []levels.Level
	index     int
	session   *core.Session
	tracker   core.ProgressTracker
	completed map[string]bool
	err       error

	cfg platformcore.RuntimeConfig

	// Status
	revealed    bool
	allComplete bool

	hudHeight int
}

// New creates a game over the given levels. Completions are reported to
// tracker, which may be nil.
func New(pack []levels.Level, tracker core.ProgressTracker) *Game {
	return &Game{
		pack:      pack,
		tracker:   tracker,
		completed: make(map[string]bool),
		cfg:       platformcore.DefaultConfig(),
		hudHeight: 4,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "l1t"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "l1t"
}

// Reset applies the runtime config and (re)starts the current level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	if cfg.CellWidth < 1 {
		cfg.CellWidth = 1
	}
	g.cfg = cfg
	g.allComplete = false
	g.loadCurrentLevel()
}

// Resize updates the screen size without touching the session.
func (g *Game) Resize(w, h int) {
	g.cfg.ScreenW = w
	g.cfg.ScreenH = h
}

// Levels returns the level pack.
func (g *Game) Levels() []levels.Level {
	return g.pack
}

// LevelIndex returns the position of the current level.
func (g *Game) LevelIndex() int {
	return g.index
}

// Level returns the current level.
func (g *Game) Level() (levels.Level, bool) {
	if g.index < 0 || g.index >= len(g.pack) {
		return levels.Level{}, false
	}
	return g.pack[g.index], true
}

// Session returns the running session, or nil if no level could be started.
func (g *Game) Session() *core.Session {
	return g.session
}

// Err returns the error that prevented the current level from starting.
func (g *Game) Err() error {
	return g.err
}

// Select switches to the level at index and starts a fresh session.
func (g *Game) Select(index int) error {
	if index < 0 || index >= len(g.pack) {
		return fmt.Errorf("l1t: level index %d out of range [0, %d)", index, len(g.pack))
	}
	g.index = index
	g.allComplete = false
	g.loadCurrentLevel()
	return g.err
}

// SelectID switches to the level with the given ID.
func (g *Game) SelectID(id string) error {
	i := levels.Index(g.pack, id)
	if i < 0 {
		return fmt.Errorf("l1t: level not found: %s", id)
	}
	return g.Select(i)
}

// SetCompleted marks levels as already completed, e.g. from stored progress.
func (g *Game) SetCompleted(ids ...string) {
	for _, id := range ids {
		g.completed[id] = true
	}
}

// Completed reports whether a level has been won.
func (g *Game) Completed(id string) bool {
	return g.completed[id]
}

// CompletedCount returns how many levels of the pack have been won.
func (g *Game) CompletedCount() int {
	n := 0
	for _, lvl := range g.pack {
		if g.completed[lvl.ID] {
			n++
		}
	}
	return n
}

// FirstUncompleted returns the index of the first level not yet won,
// or 0 when every level is complete.
func (g *Game) FirstUncompleted() int {
	for i, lvl := range g.pack {
		if !g.completed[lvl.ID] {
			return i
		}
	}
	return 0
}

// LevelCompleted records a win and forwards it to the tracker.
func (g *Game) LevelCompleted(levelID string, moves int) {
	g.completed[levelID] = true
	if g.tracker != nil {
		g.tracker.LevelCompleted(levelID, moves)
	}
}

// loadCurrentLevel starts a session for the level at index.
func (g *Game) loadCurrentLevel() {
	g.session = nil
	g.revealed = false
	g.err = nil

	lvl, ok := g.Level()
	if !ok {
		g.err = fmt.Errorf("l1t: no levels loaded")
		return
	}

	s, err := lvl.NewSession(g)
	if err != nil {
		g.err = fmt.Errorf("l1t: starting level %s: %w", lvl.ID, err)
		return
	}
	g.session = s
	g.revealIfImmediate()
}

// revealIfImmediate shows the outcome right away when no delay is configured.
func (g *Game) revealIfImmediate() {
	if g.session != nil && g.session.Outcome().Terminal() && g.cfg.OutcomeDelay <= 0 {
		g.revealed = true
	}
}

// RevealOutcome makes a terminal outcome visible and lets Confirm continue.
// The platform calls this once the outcome delay has passed.
// Returns false if there was nothing to reveal.
func (g *Game) RevealOutcome() bool {
	if g.session == nil || !g.session.Outcome().Terminal() || g.revealed {
		return false
	}
	g.revealed = true
	return true
}

// Step applies one turn of input. At most one action is applied per frame.
// Turns are reported as changed when the session snapshot differs, so the
// platform skips redraws for bumps into walls and toggles with nothing nearby.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if g.session == nil || g.allComplete {
		return platformcore.StepResult{State: g.State()}
	}

	changed := false
	outcome := g.session.Outcome()
	before := g.session.Snapshot()

	switch {
	case input.Has(platformcore.ActionRestart):
		g.session.Restart()
		g.revealed = false
		changed = true

	case outcome.Terminal():
		if g.revealed && input.Has(platformcore.ActionConfirm) {
			g.continueAfterOutcome(outcome)
			changed = true
		}

	case input.Has(platformcore.ActionQuit):
		g.session.Quit()
		changed = g.session.Snapshot() != before

	case input.Has(platformcore.ActionToggle):
		g.session.ToggleAdjacent()
		changed = g.session.Snapshot() != before

	default:
		for _, a := range []platformcore.Action{
			platformcore.ActionUp, platformcore.ActionDown,
			platformcore.ActionLeft, platformcore.ActionRight,
		} {
			if input.Has(a) {
				g.session.Move(actionDir(a))
				changed = g.session.Snapshot() != before
				break
			}
		}
	}

	if changed {
		g.revealIfImmediate()
	}
	return platformcore.StepResult{State: g.State(), Changed: changed}
}

// continueAfterOutcome advances after a win and retries after a loss.
func (g *Game) continueAfterOutcome(o core.Outcome) {
	if o.Status != core.StatusWon {
		g.session.Restart()
		g.revealed = false
		return
	}

	if g.index+1 >= len(g.pack) {
		g.allComplete = true
		return
	}
	g.index++
	g.loadCurrentLevel()
}

func actionDir(a platformcore.Action) core.Dir {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp
	case platformcore.ActionDown:
		return core.DirDown
	case platformcore.ActionLeft:
		return core.DirLeft
	default:
		return core.DirRight
	}
}

// OutcomeMessage returns the message shown for a terminal outcome.
func OutcomeMessage(o core.Outcome) string {
	switch {
	case o.Status == core.StatusWon:
		return MsgWon
	case o.Reason == core.LossZapper:
		return MsgZapper
	case o.Reason == core.LossDeath:
		return MsgDeath
	case o.Reason == core.LossQuit:
		return MsgQuit
	default:
		return ""
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		LevelIndex:  g.index,
		LevelCount:  len(g.pack),
		Revealed:    g.revealed,
		AllComplete: g.allComplete,
	}
	if g.session != nil {
		st.LevelID = g.session.LevelID()
		st.Moves = g.session.Moves()
		st.Status = g.session.Outcome().String()
		st.LevelOver = g.session.Outcome().Terminal()
	}
	return st
}
