package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/l1t/internal/core"
	"github.com/vovakirdan/l1t/internal/l1t/levels"
	"github.com/vovakirdan/l1t/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func testOptions(t *testing.T, delay time.Duration) Options {
	t.Helper()
	pack, err := levels.NewBuiltinLoader(nil).LoadAll()
	require.NoError(t, err)

	rc := core.DefaultConfig()
	rc.OutcomeDelay = delay
	return Options{
		Levels:  pack,
		Player:  "ada",
		Runtime: rc,
		Logger:  log.New(io.Discard),
	}
}

// press sends keys one by one and returns the app and the last command.
func press(t *testing.T, a App, keys ...string) (App, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var m tea.Model
		m, cmd = a.Update(keyMsg(k))
		var ok bool
		a, ok = m.(App)
		require.True(t, ok)
	}
	return a, cmd
}

func TestAppWinAdvances(t *testing.T) {
	opts := testOptions(t, 0)
	store, err := storage.Open(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	defer store.Close()
	opts.Store = store

	a := NewApp(opts)
	require.NotEmpty(t, a.SessionID())
	assert.Equal(t, "01-first-light", a.Game().State().LevelID)

	a, _ = press(t, a, "d", " ")
	st := a.Game().State()
	assert.Equal(t, "won", st.Status)
	assert.True(t, st.Revealed)

	a, _ = press(t, a, "enter")
	assert.Equal(t, "02-cover", a.Game().State().LevelID)

	done, err := store.CompletedLevels("ada")
	require.NoError(t, err)
	assert.Equal(t, []string{"01-first-light"}, done)

	// A new app for the same player starts at the first uncompleted level.
	again := NewApp(opts)
	assert.Equal(t, "02-cover", again.Game().State().LevelID)
	assert.True(t, again.Game().Completed("01-first-light"))
}

func TestAppRevealIsDelayed(t *testing.T) {
	a := NewApp(testOptions(t, 5*time.Millisecond))

	a, first := press(t, a, "d", " ")
	require.NotNil(t, first)
	assert.False(t, a.Game().State().Revealed)

	// Restart and win again; the first reveal is now stale.
	a, _ = press(t, a, "r")
	a, second := press(t, a, "d", " ")
	require.NotNil(t, second)

	m, _ := a.Update(first())
	a = m.(App)
	assert.False(t, a.Game().State().Revealed, "stale reveal ignored")

	m, _ = a.Update(second())
	a = m.(App)
	assert.True(t, a.Game().State().Revealed)
}

func TestAppScreens(t *testing.T) {
	opts := testOptions(t, 0)
	opts.StartInMenu = true
	a := NewApp(opts)

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	a = m.(App)
	assert.Contains(t, a.View(), "Select a level (0/8 completed)")

	a, _ = press(t, a, "j", "enter")
	assert.Equal(t, screenGame, a.active)
	assert.Equal(t, "02-cover", a.Game().State().LevelID)
	assert.Contains(t, a.View(), "Level 2/8: Cover")

	a, _ = press(t, a, "?")
	assert.Equal(t, screenHelp, a.active)
	assert.Contains(t, a.View(), "CONTROLS")

	a, _ = press(t, a, "esc")
	assert.Equal(t, screenGame, a.active, "help returns to the game")

	a, _ = press(t, a, "esc", "p")
	assert.Equal(t, screenProgress, a.active)
	assert.Contains(t, a.View(), "Progress is not being saved")

	a, _ = press(t, a, "esc")
	assert.Equal(t, screenMenu, a.active)
}

func TestAppQuit(t *testing.T) {
	a := NewApp(testOptions(t, 0))

	a, cmd := press(t, a, "q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "lost(quit)", a.Game().State().Status)
	assert.Empty(t, a.View())
}

func TestAppStartLevel(t *testing.T) {
	opts := testOptions(t, 0)
	opts.StartLevel = "04-reverse"
	a := NewApp(opts)
	assert.Equal(t, "04-reverse", a.Game().State().LevelID)

	opts.StartLevel = "nope"
	a = NewApp(opts)
	assert.Equal(t, "01-first-light", a.Game().State().LevelID)
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"w", core.ActionUp},
		{"s", core.ActionDown},
		{"a", core.ActionLeft},
		{"d", core.ActionRight},
		{" ", core.ActionToggle},
		{"r", core.ActionRestart},
		{"enter", core.ActionConfirm},
		{"esc", core.ActionBack},
		{"?", core.ActionHelp},
		{"q", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tc := range tests {
		if got := keys.Action(keyMsg(tc.key)); got != tc.want {
			t.Errorf("Action(%q) = %v, expected %v", tc.key, got, tc.want)
		}
	}
}
