package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/l1t/internal/core"
	"github.com/vovakirdan/l1t/internal/l1t"
	"github.com/vovakirdan/l1t/internal/l1t/levels"
	"github.com/vovakirdan/l1t/internal/storage"
)

// screenID identifies the active screen of an App.
type screenID int

const (
	screenMenu screenID = iota
	screenGame
	screenHelp
	screenProgress
)

// Options configures an App.
type Options struct {
	Levels      []levels.Level
	Store       *storage.Store // Nil disables progress tracking
	Player      string
	Runtime     core.RuntimeConfig
	StartLevel  string // Level ID; empty starts at the first uncompleted level
	StartInMenu bool
	Theme       string // Theme name, see ThemeByName
	Screenshots bool   // Allow ctrl+s to save the board to ~/.l1t/screenshots
	Logger      *log.Logger
}

// App is the top-level Bubble Tea model: level menu -> game -> menu, with
// help and progress screens on top. It is used for local and SSH play.
type App struct {
	game    *l1t.Game
	tracker *storage.Tracker
	store   *storage.Store
	player  string
	opts    Options
	keys    KeyMap
	theme   Theme
	screen  *core.Screen
	config  core.RuntimeConfig
	logger  *log.Logger

	active   screenID
	previous screenID // Screen to return to from help
	menu     LevelMenuModel
	help     HelpModel
	progress ProgressModel

	gen      int // Incremented on every turn that changed the game
	quitting bool
}

// NewApp creates the application model.
func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	if opts.Player == "" {
		opts.Player = "player"
	}

	a := App{
		store:  opts.Store,
		player: opts.Player,
		opts:   opts,
		keys:   DefaultKeyMap(),
		theme:  ThemeByName(opts.Theme),
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		config: opts.Runtime,
		logger: logger,
	}

	// A nil *Tracker must not become a non-nil interface.
	if opts.Store != nil {
		a.tracker = storage.NewTracker(opts.Store, opts.Player, logger)
		a.game = l1t.New(opts.Levels, a.tracker)
		completed, err := opts.Store.CompletedLevels(opts.Player)
		if err != nil {
			logger.Warn("could not load progress", "player", opts.Player, "err", err)
		}
		a.game.SetCompleted(completed...)
	} else {
		a.game = l1t.New(opts.Levels, nil)
	}

	a.game.Reset(a.config)
	start := a.game.FirstUncompleted()
	if opts.StartLevel != "" {
		if i := levels.Index(opts.Levels, opts.StartLevel); i >= 0 {
			start = i
		} else {
			logger.Warn("unknown start level", "id", opts.StartLevel)
		}
	}
	if len(opts.Levels) > 0 {
		//nolint:errcheck // Loaded levels are validated, Err is rendered by the game
		a.game.Select(start)
	}

	if opts.StartInMenu {
		a.openMenu()
	} else {
		a.active = screenGame
	}
	return a
}

// Game returns the underlying game.
func (a App) Game() *l1t.Game {
	return a.game
}

// SessionID returns the progress session ID, or "" without a store.
func (a App) SessionID() string {
	if a.tracker == nil {
		return ""
	}
	return a.tracker.SessionID()
}

// Init initializes the model.
func (a App) Init() tea.Cmd {
	return a.revealLater()
}

// revealLater schedules the outcome message of a level that just ended.
func (a App) revealLater() tea.Cmd {
	st := a.game.State()
	if a.active != screenGame || !st.LevelOver || st.Revealed {
		return nil
	}
	return revealCmd(a.config.OutcomeDelay, a.gen)
}

// Update handles messages and updates the model state.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.config.ScreenW = wsm.Width
		a.config.ScreenH = wsm.Height
		a.screen.Resize(wsm.Width, wsm.Height)
		a.game.Resize(wsm.Width, wsm.Height)
	}

	switch a.active {
	case screenMenu:
		return a.updateMenu(msg)
	case screenHelp:
		return a.updateHelp(msg)
	case screenProgress:
		return a.updateProgress(msg)
	default:
		return a.updateGame(msg)
	}
}

// updateGame handles updates when in game mode.
func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" && a.opts.Screenshots {
			a.saveScreenshot()
			return a, nil
		}

		action := a.keys.Action(msg)
		switch action {
		case core.ActionNone:
			return a, nil
		case core.ActionQuit:
			// Leaving mid-level gives it up.
			a.game.Step(core.FrameOf(core.ActionQuit))
			a.quitting = true
			return a, tea.Quit
		case core.ActionBack:
			a.openMenu()
			return a, nil
		case core.ActionHelp:
			a.openHelp()
			return a, nil
		}

		res := a.game.Step(core.FrameOf(action))
		if !res.Changed {
			return a, nil
		}
		a.gen++
		return a, a.revealLater()

	case RevealMsg:
		if msg.Gen == a.gen {
			a.game.RevealOutcome()
		}
	}
	return a, nil
}

// updateMenu handles updates when in menu mode.
func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.menu, cmd = a.menu.Update(msg)

	switch {
	case a.menu.IsQuitting():
		a.quitting = true
		return a, tea.Quit
	case a.menu.Selected() >= 0:
		if err := a.game.Select(a.menu.Selected()); err != nil {
			a.logger.Error("could not start level", "err", err)
		}
		a.gen++
		a.active = screenGame
		return a, a.revealLater()
	case a.menu.WantsHelp():
		a.openHelp()
	case a.menu.WantsProgress():
		a.progress = NewProgressModel(a.store, a.player, a.levelEntries(), a.config.ScreenW, a.config.ScreenH, a.theme)
		a.active = screenProgress
	}
	return a, cmd
}

// updateHelp handles updates when the help screen is open.
func (a App) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.help, cmd = a.help.Update(msg)

	switch {
	case a.help.IsQuitting():
		a.quitting = true
		return a, tea.Quit
	case a.help.IsClosed():
		if a.previous == screenMenu {
			a.openMenu()
		} else {
			a.active = a.previous
		}
	}
	return a, cmd
}

// updateProgress handles updates when the progress board is open.
func (a App) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.progress, cmd = a.progress.Update(msg)

	switch {
	case a.progress.IsQuitting():
		a.quitting = true
		return a, tea.Quit
	case a.progress.IsGoingBack():
		a.openMenu()
	}
	return a, cmd
}

// openMenu shows a fresh level menu with the cursor on the current level.
func (a *App) openMenu() {
	a.menu = NewLevelMenuModel(a.levelEntries(), a.game.LevelIndex(), a.config.ScreenW, a.config.ScreenH, a.keys, a.theme)
	a.active = screenMenu
}

// openHelp shows the help screen over the active screen.
func (a *App) openHelp() {
	a.previous = a.active
	a.help = NewHelpModel(a.keys, a.config.ScreenW, a.config.ScreenH, a.theme)
	a.active = screenHelp
}

// levelEntries builds menu rows from the level pack and stored progress.
func (a App) levelEntries() []LevelEntry {
	best := make(map[string]int)
	if a.store != nil {
		stats, err := a.store.Stats(a.player)
		if err != nil {
			a.logger.Warn("could not load progress", "player", a.player, "err", err)
		}
		for _, st := range stats {
			best[st.LevelID] = st.BestMoves
		}
	}

	pack := a.game.Levels()
	entries := make([]LevelEntry, len(pack))
	for i, lvl := range pack {
		entries[i] = LevelEntry{
			ID:        lvl.ID,
			Title:     lvl.Title(),
			Author:    lvl.Author,
			Completed: a.game.Completed(lvl.ID),
			BestMoves: best[lvl.ID],
		}
	}
	return entries
}

// saveScreenshot saves the current board to a file.
func (a *App) saveScreenshot() {
	a.game.Render(a.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".l1t", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		a.logger.Warn("could not save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", a.game.State().LevelID, timestamp))
	if err := os.WriteFile(path, []byte(a.screen.String()), 0o600); err != nil {
		a.logger.Warn("could not save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.active {
	case screenMenu:
		return a.menu.View()
	case screenHelp:
		return a.help.View()
	case screenProgress:
		return a.progress.View()
	}

	a.game.Render(a.screen)
	return RenderScreen(a.screen, a.theme.Board)
}

// Run starts the Bubble Tea program for local play.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewApp(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
