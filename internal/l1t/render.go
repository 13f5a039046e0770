package l1t

import (
	"fmt"

	platformcore "github.com/vovakirdan/l1t/internal/core"
	"github.com/vovakirdan/l1t/internal/l1t/core"
)

// glyph is what one board cell looks like on screen.
type glyph struct {
	r     rune
	fill  rune // Rune for the remaining columns of a wide cell
	color platformcore.Color
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.session == nil:
		msg := "No levels found"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.renderOverlay(dst, msg, "Check the levels directory", platformcore.ColorRed)
		return
	case g.allComplete:
		g.renderOverlay(dst, MsgAllComplete, "Esc: level menu | Q: quit", platformcore.ColorBrightGreen)
		return
	}

	b := g.session.Board()
	cw := g.cfg.CellWidth
	gridW := b.Cols * cw
	gridH := b.Rows
	if dst.Width() < gridW || dst.Height() < g.hudHeight+gridH+2 {
		g.renderOverlay(dst, "Window too small", "Resize to continue", platformcore.ColorYellow)
		return
	}

	area := platformcore.NewRect(0, g.hudHeight, dst.Width(), dst.Height()-g.hudHeight-2)
	grid := area.Centered(gridW, gridH)
	g.renderBoard(dst, grid.X, grid.Y)
	g.renderFooter(dst, grid.Bottom()+1)

	if g.revealed {
		o := g.session.Outcome()
		hint := "Enter: try again | R: restart"
		color := platformcore.ColorBrightRed
		if o.Status == core.StatusWon {
			hint = "Enter: next level"
			if g.index+1 >= len(g.pack) {
				hint = "Enter: finish"
			}
			color = platformcore.ColorBrightGreen
		}
		g.renderOverlay(dst, OutcomeMessage(o), hint, color)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " l1t"
	if lvl, ok := g.Level(); ok && g.session != nil {
		hud = fmt.Sprintf(" l1t | Level %d/%d: %s | Moves: %d | Done: %d/%d",
			g.index+1, len(g.pack), lvl.Title(), g.session.Moves(), g.CompletedCount(), len(g.pack))
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
	}

	controls := " WASD/←↑↓→: Move | Space: Toggle | R: Restart | ?: Help | Esc: Menu | Q: Quit"
	dst.DrawTextWithColor(0, 2, controls, platformcore.ColorGray)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 3, '─', platformcore.ColorGray)
	}
}

// renderBoard draws every cell of the board with its top-left corner at (x0, y0).
func (g *Game) renderBoard(dst *platformcore.Screen, x0, y0 int) {
	b := g.session.Board()
	cw := g.cfg.CellWidth

	var beams map[core.Coord]rune
	if g.cfg.ShowBeams {
		beams = core.BeamGlyphs(g.session.Beams())
	}

	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			gl := g.cellGlyph(b, core.C(r, c), beams)
			x := x0 + c*cw
			dst.SetWithColor(x, y0+r, gl.r, gl.color)
			for i := 1; i < cw; i++ {
				dst.SetWithColor(x+i, y0+r, gl.fill, gl.color)
			}
		}
	}
}

// cellGlyph picks the glyph for one cell: the occupant, else the beam, else blank.
// Passable toggle blocks are drawn as empty floor.
func (g *Game) cellGlyph(b *core.Board, pos core.Coord, beams map[core.Coord]rune) glyph {
	if o, ok := b.At(pos); ok {
		if tb := o.ToggleBlock(); tb == nil || !tb.Passable {
			return objectGlyph(o)
		}
	}
	if r, ok := beams[pos]; ok {
		fill := ' '
		if r == '-' || r == '+' {
			fill = '-'
		}
		return glyph{r: r, fill: fill, color: g.cfg.BeamColor}
	}
	return glyph{r: ' ', fill: ' '}
}

// objectGlyph returns the glyph of an object in its current state.
func objectGlyph(o *core.Object) glyph {
	switch o.Kind() {
	case core.KindPlayer:
		return glyph{'X', ' ', platformcore.ColorBrightGreen}
	case core.KindWall:
		return glyph{'█', '█', platformcore.ColorWhite}
	case core.KindBlock:
		return glyph{'B', ' ', platformcore.ColorGray}
	case core.KindToggleBlock:
		return glyph{'T', ' ', platformcore.ColorMagenta}
	case core.KindSwitch:
		return glyph{'s', ' ', onOff(o.Switch().On)}
	case core.KindButton:
		return glyph{'b', ' ', onOff(o.Button().Pressed)}
	case core.KindMirror:
		return glyph{core.Symbol(o), ' ', platformcore.ColorWhite}
	case core.KindLaser:
		l := o.Laser()
		c := platformcore.ColorDarkRed
		if l.Enabled {
			c = platformcore.ColorBrightRed
		}
		return glyph{'L', laserArrow(l.Dir), c}
	case core.KindStatue:
		c := platformcore.ColorYellow
		if o.Statue().Lit {
			c = platformcore.ColorBrightYellow
		}
		return glyph{core.Symbol(o), ' ', c}
	case core.KindZapper:
		c := platformcore.ColorYellow
		if o.Zapper().Lit {
			c = platformcore.ColorBrightRed
		}
		return glyph{'Z', ' ', c}
	default:
		return glyph{'?', ' ', platformcore.ColorDefault}
	}
}

func onOff(on bool) platformcore.Color {
	if on {
		return platformcore.ColorBrightYellow
	}
	return platformcore.ColorRed
}

func laserArrow(d core.Dir) rune {
	switch d {
	case core.DirUp:
		return '↑'
	case core.DirDown:
		return '↓'
	case core.DirLeft:
		return '←'
	default:
		return '→'
	}
}

// renderFooter draws the level description and the statue summary under the grid.
func (g *Game) renderFooter(dst *platformcore.Screen, y int) {
	b := g.session.Board()

	lit := 0
	for _, o := range b.ObjectsOf(core.KindStatue) {
		if o.Statue().Lit {
			lit++
		}
	}
	zapped := 0
	for _, o := range b.ObjectsOf(core.KindZapper) {
		if o.Zapper().Lit {
			zapped++
		}
	}

	summary := fmt.Sprintf("Statues lit: %d/%d | Zappers lit: %d/%d",
		lit, b.Count(core.KindStatue), zapped, b.Count(core.KindZapper))
	dst.DrawTextCenteredWithColor(y, summary, platformcore.ColorGray)

	if lvl, ok := g.Level(); ok && lvl.Description != "" {
		dst.DrawTextCenteredWithColor(y+1, lvl.Description, platformcore.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string, c platformcore.Color) {
	boxW := platformcore.Max(len([]rune(line1)), len([]rune(line2))) + 4
	box := platformcore.NewRect(0, 0, dst.Width(), dst.Height()).Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextCenteredWithColor(box.Y+1, line1, c)
	dst.DrawTextCenteredWithColor(box.Y+3, line2, platformcore.ColorGray)
}
