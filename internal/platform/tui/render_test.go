package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/l1t/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextWithColor(0, 0, "L→", core.ColorBrightRed)
	s.DrawTextWithColor(2, 0, "-S", core.ColorYellow)
	s.DrawText(0, 1, "X")

	for name, p := range map[string]Palette{"color": ColorPalette(), "mono": MonochromePalette()} {
		t.Run(name, func(t *testing.T) {
			out := RenderScreen(s, p)
			// Styles only add escape sequences; the text is unchanged.
			assert.Equal(t, "L→-S  \nX     ", stripANSI(out))
		})
	}
}

func TestPalettesCoverAllColors(t *testing.T) {
	color, mono := ColorPalette(), MonochromePalette()
	for c := range ansiCodes {
		assert.Contains(t, color, c)
		assert.Contains(t, mono, c)
	}
	assert.Len(t, color, len(ansiCodes)+1)
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, len(ColorPalette()), len(ThemeByName("").Board))
	mono := ThemeByName("Mono")
	assert.True(t, mono.Board[core.ColorBrightYellow].GetBold())
	assert.False(t, ThemeByName("default").Board[core.ColorBrightYellow].GetBold())
}

func stripANSI(s string) string {
	var out []rune
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
