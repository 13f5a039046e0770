package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// helpSection describes one object of the game.
type helpSection struct {
	glyph string
	color string
	title string
	text  string
}

var helpSections = []helpSection{
	{"X", "10", "PLAYER", "Hey, that's you! Walk with WASD or the arrow keys and push anything that isn't nailed down."},
	{"L", "9", "LASERS", "Lasers fire a beam in the direction of their arrow. Press Space next to one to switch it on or off. " +
		"A laser hit by a beam switches off and stays off until you switch it back on. Get hit by a beam yourself and you die."},
	{"S", "11", "STATUES", "Every statue must be lit by a beam to win."},
	{"R", "11", "REVERSE STATUES", "Reverse statues must NOT be lit when you win."},
	{"Z", "3", "ZAPPERS", "Never let a beam touch a zapper. Lighting one loses the level."},
	{"/ \\", "7", "MIRRORS", "Mirrors bend beams by 90 degrees. Push them around, or press Space next to one to flip it."},
	{"B", "245", "BLOCKS", "Blocks stop beams and can be pushed, one at a time."},
	{"s b", "1", "SWITCHES AND BUTTONS", "Walk into a switch or button to flip every toggle block on the level."},
	{"T", "5", "TOGGLE BLOCKS", "Solid toggle blocks stop you and your beams. Flipped, they vanish and let both through."},
}

// HelpModel shows the controls and a description of every object.
type HelpModel struct {
	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	theme    Theme
	width    int
	height   int
	closed   bool
	quitting bool
}

// NewHelpModel creates a scrollable help screen.
func NewHelpModel(keys KeyMap, width, height int, theme Theme) HelpModel {
	h := help.New()
	h.ShowAll = true

	m := HelpModel{
		help:  h,
		keys:  keys,
		theme: theme,
	}
	m.resize(width, height)
	return m
}

func (m *HelpModel) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.viewport = viewport.New(width, max(1, height-4))
	m.viewport.SetContent(m.content())
}

// content builds the scrollable help text.
func (m HelpModel) content() string {
	var b strings.Builder
	textWidth := max(20, min(m.width-6, 72))
	body := lipgloss.NewStyle().Width(textWidth).PaddingLeft(4)

	b.WriteString(m.theme.Title.Render("l1t"))
	b.WriteString(m.theme.Description.Render(" - a terminal strategy game about moving lasers and lighting statues"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Heading.Render("CONTROLS"))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n")

	for _, s := range helpSections {
		b.WriteString("\n")
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(s.color)).Bold(true).Render(s.glyph)
		b.WriteString(glyph + "  " + m.theme.Heading.Render(s.title))
		b.WriteString("\n")
		b.WriteString(body.Render(s.text))
		b.WriteString("\n")
	}
	return b.String()
}

// Init initializes the model.
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HelpModel) Update(msg tea.Msg) (HelpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Confirm):
			m.closed = true
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the help screen.
func (m HelpModel) View() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")
	footer := "↑/↓: Scroll  |  Esc/?: Close  |  Q: Quit"
	b.WriteString(centerText(m.theme.Controls.Render(footer), m.width))
	return b.String()
}

// IsClosed returns true if the user closed the help screen.
func (m HelpModel) IsClosed() bool {
	return m.closed
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HelpModel) IsQuitting() bool {
	return m.quitting
}
