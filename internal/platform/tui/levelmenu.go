package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// LevelEntry is one row of the level menu.
type LevelEntry struct {
	ID        string
	Title     string
	Author    string
	Completed bool
	BestMoves int // 0 when unknown
}

// LevelMenuModel is the level picker.
type LevelMenuModel struct {
	entries      []LevelEntry
	cursor       int
	width        int
	height       int
	keys         KeyMap
	theme        Theme
	scrollOffset int

	selected     int // -1 while choosing
	wantHelp     bool
	wantProgress bool
	quitting     bool
}

// NewLevelMenuModel creates a level menu with the cursor on index cursor.
func NewLevelMenuModel(entries []LevelEntry, cursor, width, height int, keys KeyMap, theme Theme) LevelMenuModel {
	m := LevelMenuModel{
		entries:  entries,
		width:    width,
		height:   height,
		keys:     keys,
		theme:    theme,
		selected: -1,
	}
	if cursor >= 0 && cursor < len(entries) {
		m.cursor = cursor
	}
	m.updateScroll()
	return m
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (LevelMenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (LevelMenuModel, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.entries) > 0 {
			m.selected = m.cursor
		}
	case MenuActionHelp:
		m.wantHelp = true
	case MenuActionProgress:
		m.wantProgress = true
	}
	return m, nil
}

// visibleItems returns how many entries fit between header and footer.
func (m LevelMenuModel) visibleItems() int {
	return max(3, m.height-10)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m LevelMenuModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("l 1 t"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Description.Render("move lasers, light statues"), m.width))
	b.WriteString("\n\n")

	done := 0
	for _, e := range m.entries {
		if e.Completed {
			done++
		}
	}
	subtitle := fmt.Sprintf("Select a level (%d/%d completed):", done, len(m.entries))
	b.WriteString(centerText(m.theme.Subtitle.Render(subtitle), m.width))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(centerText(m.theme.Empty.Render("No levels found."), m.width))
		b.WriteString("\n")
	}

	end := min(m.scrollOffset+m.visibleItems(), len(m.entries))
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.Description.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	for i := m.scrollOffset; i < end; i++ {
		e := m.entries[i]
		cursor := "  "
		style := m.theme.MenuItemNormal
		if e.Completed {
			style = m.theme.MenuItemDone
		}
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		mark := "  "
		if e.Completed {
			mark = m.theme.DoneMark.Render("✓ ")
		}

		line := fmt.Sprintf("%s%2d. %-24s", cursor, i+1, e.Title)
		if e.BestMoves > 0 {
			line += fmt.Sprintf(" best %d", e.BestMoves)
		}
		b.WriteString(centerText(mark+style.Render(line), m.width))
		b.WriteString("\n")
	}

	if end < len(m.entries) {
		b.WriteString(centerText(m.theme.Description.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	if len(m.entries) > 0 && m.entries[m.cursor].Author != "" {
		b.WriteString("\n")
		b.WriteString(centerText(m.theme.Description.Render("by "+m.entries[m.cursor].Author), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  P: Progress  |  ?: Help  |  Q: Quit"
	b.WriteString(centerText(m.theme.Controls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Cursor returns the highlighted entry index.
func (m LevelMenuModel) Cursor() int {
	return m.cursor
}

// Selected returns the chosen entry index, or -1 while still choosing.
func (m LevelMenuModel) Selected() int {
	return m.selected
}

// WantsHelp returns true if the user asked for the help screen.
func (m LevelMenuModel) WantsHelp() bool {
	return m.wantHelp
}

// WantsProgress returns true if the user asked for the progress board.
func (m LevelMenuModel) WantsProgress() bool {
	return m.wantProgress
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}
