package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/l1t/internal/core"
)

// Palette maps board colors to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// ansiCodes holds the terminal color of every core.Color.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkRed:       "88",
}

// ColorPalette returns the full-color board palette.
func ColorPalette() Palette {
	p := Palette{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range ansiCodes {
		p[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

// MonochromePalette returns a palette without hues. Lit and enabled objects
// use bright colors, which turn bold; everything else is plain or faint.
func MonochromePalette() Palette {
	p := Palette{core.ColorDefault: lipgloss.NewStyle()}
	for c := range ansiCodes {
		switch c {
		case core.ColorBrightRed, core.ColorBrightGreen, core.ColorBrightYellow,
			core.ColorBrightBlue, core.ColorBrightMagenta, core.ColorBrightCyan, core.ColorBrightWhite:
			p[c] = lipgloss.NewStyle().Bold(true)
		case core.ColorGray, core.ColorDarkRed:
			p[c] = lipgloss.NewStyle().Faint(true)
		default:
			p[c] = lipgloss.NewStyle()
		}
	}
	return p
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen, palette Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := palette[color]
			if !ok {
				style = palette[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
