package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the menu, help and progress screens,
// and the palette used to color the board.
type Theme struct {
	Board Palette

	// Titles and text
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Description lipgloss.Style
	Controls    lipgloss.Style

	// Level menu
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuItemDone   lipgloss.Style
	DoneMark       lipgloss.Style

	// Boxes
	Border  lipgloss.Style
	Heading lipgloss.Style
	Empty   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Board: ColorPalette(),

		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemDone:   lipgloss.NewStyle().Foreground(lipgloss.Color("108")),
		DoneMark:       lipgloss.NewStyle().Foreground(lipgloss.Color("46")),

		Border:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Heading: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Board = MonochromePalette()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.MenuItemDone = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	theme.DoneMark = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.Heading = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return theme
}

// ThemeByName returns a theme by name, falling back to the default.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "mono", "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// centerText centers text within given width.
// Width is measured without ANSI sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
