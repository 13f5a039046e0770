package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/l1t/internal/storage"
)

// ProgressKeyMap defines the key bindings for the progress board.
type ProgressKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextScope key.Binding
	PrevScope key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ProgressKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScope, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ProgressKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextScope, k.PrevScope},
		{k.Back, k.Quit},
	}
}

// DefaultProgressKeyMap returns default key bindings.
func DefaultProgressKeyMap() ProgressKeyMap {
	return ProgressKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextScope: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "you/everyone"),
		),
		PrevScope: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "you/everyone"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "p"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// progressScope is whose completions the board shows.
type progressScope struct {
	title  string
	player string // Empty for all players
}

// ProgressModel is the Bubble Tea model for the progress board.
type ProgressModel struct {
	levels    []LevelEntry
	scopes    []progressScope
	scope     int
	store     *storage.Store
	stats     map[string]storage.LevelStats
	err       error
	table     table.Model
	help      help.Model
	keys      ProgressKeyMap
	theme     Theme
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewProgressModel creates a progress board for player over the given levels.
func NewProgressModel(store *storage.Store, player string, levels []LevelEntry, width, height int, theme Theme) ProgressModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ProgressModel{
		levels: levels,
		scopes: []progressScope{
			{title: "You (" + player + ")", player: player},
			{title: "Everyone", player: ""},
		},
		store:  store,
		help:   h,
		keys:   DefaultProgressKeyMap(),
		theme:  theme,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadStats()
	return m
}

// createTable creates a new table sized to the screen.
func (m *ProgressModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Level", Width: 24},
		{Title: "Done", Width: 4},
		{Title: "Best", Width: 5},
		{Title: "Wins", Width: 5},
		{Title: "Last", Width: 12},
	}

	// Give spare width to the level name
	if spare := m.width - 4 - 65; spare > 0 {
		columns[1].Width += min(spare, 16)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("52")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadStats loads completion stats for the current scope.
func (m *ProgressModel) loadStats() {
	m.stats = make(map[string]storage.LevelStats)
	m.err = nil
	if m.store != nil {
		stats, err := m.store.Stats(m.scopes[m.scope].player)
		if err != nil {
			m.err = err
		}
		for _, st := range stats {
			m.stats[st.LevelID] = st
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current stats.
func (m *ProgressModel) updateTableRows() {
	rows := make([]table.Row, len(m.levels))
	for i, lvl := range m.levels {
		row := table.Row{fmt.Sprintf("%d", i+1), lvl.Title, "", "-", "0", "-"}
		if st, ok := m.stats[lvl.ID]; ok {
			row[2] = "✓"
			row[3] = fmt.Sprintf("%d", st.BestMoves)
			row[4] = fmt.Sprintf("%d", st.Completions)
			if !st.LastCompleted.IsZero() {
				row[5] = st.LastCompleted.Format("Jan 02 15:04")
			}
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the progress board.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the progress board.
func (m ProgressModel) Update(msg tea.Msg) (ProgressModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextScope):
			m.scope = (m.scope + 1) % len(m.scopes)
			m.loadStats()
			return m, nil

		case key.Matches(msg, m.keys.PrevScope):
			m.scope = (m.scope + len(m.scopes) - 1) % len(m.scopes)
			m.loadStats()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the progress board.
func (m ProgressModel) View() string {
	var b strings.Builder

	done := 0
	for _, lvl := range m.levels {
		if _, ok := m.stats[lvl.ID]; ok {
			done++
		}
	}

	title := fmt.Sprintf("PROGRESS - %s - %d/%d levels", m.scopes[m.scope].title, done, len(m.levels))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Heading.Render(title), m.width))
	b.WriteString("\n\n")

	var content string
	switch {
	case m.store == nil:
		content = m.theme.Empty.Render("Progress is not being saved.\nStart l1t with a database to track completions.")
	case m.err != nil:
		content = m.theme.Empty.Render("Could not load progress:\n" + m.err.Error())
	default:
		content = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.theme.Border.Render(content)))
	b.WriteString("\n")

	b.WriteString(m.theme.Controls.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back.
func (m ProgressModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ProgressModel) IsQuitting() bool {
	return m.quitting
}
