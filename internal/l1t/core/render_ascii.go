package core

import (
	"fmt"
	"strings"
)

// BeamGlyphs returns the rune drawn on each beam cell.
// Straight segments are '|' or '-', cells crossed both ways are '+', and the
// last cell of a beam absorbed by the wall ring carries an arrow head.
// Occupied cells are included; renderers draw the occupant over the glyph.
func BeamGlyphs(beams []Beam) map[Coord]rune {
	glyphs := make(map[Coord]rune)
	for _, bm := range beams {
		for i, cell := range bm.Path {
			g := '-'
			if cell.Heading.Vertical() {
				g = '|'
			}
			if i == len(bm.Path)-1 && bm.Target == nil {
				g = arrowHead(cell.Heading)
			}
			if prev, ok := glyphs[cell.Pos]; ok && prev != g {
				if isArrow(prev) {
					continue
				}
				if !isArrow(g) {
					g = '+'
				}
			}
			glyphs[cell.Pos] = g
		}
	}
	return glyphs
}

func arrowHead(d Dir) rune {
	switch d {
	case DirUp:
		return '^'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	default:
		return '>'
	}
}

func isArrow(r rune) bool {
	return r == '^' || r == 'v' || r == '<' || r == '>'
}

// RenderASCII creates an ASCII representation of a board with its beams.
// This is used for debugging and golden outputs in tests.
//
// Format:
//   - Objects use their level-file symbols, empty cells are '.'
//   - Beam cells use the BeamGlyphs runes
//   - A footer line lists the statue and zapper state
func RenderASCII(b *Board, beams []Beam) string {
	var sb strings.Builder
	glyphs := BeamGlyphs(beams)

	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			pos := C(r, c)
			if o, ok := b.At(pos); ok {
				sb.WriteRune(Symbol(o))
			} else if g, ok := glyphs[pos]; ok {
				sb.WriteRune(g)
			} else {
				sb.WriteRune('.')
			}
		}
		sb.WriteString("\n")
	}

	lit := 0
	for _, o := range b.ObjectsOf(KindStatue) {
		if o.Statue().Lit {
			lit++
		}
	}
	zapped := 0
	for _, o := range b.ObjectsOf(KindZapper) {
		if o.Zapper().Lit {
			zapped++
		}
	}
	sb.WriteString(fmt.Sprintf("Statues lit: %d/%d | Zappers lit: %d/%d\n",
		lit, b.Count(KindStatue), zapped, b.Count(KindZapper)))

	return sb.String()
}
