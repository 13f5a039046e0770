// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/l1t/internal/l1t/core"
)

// Format error codes, in addition to the core construction codes.
const (
	CodeNotWalled     = "NOT_WALLED"
	CodeRaggedGrid    = "RAGGED_GRID"
	CodeMissingHeader = "MISSING_HEADER"
)

// WallSymbol is the rune every boundary cell must carry.
const WallSymbol = 'I'

// Level represents a parsed level ready for use.
type Level struct {
	ID          string // Empty when the format carries no ID; the loader derives one
	Name        string
	Author      string
	Description string
	Rows        int
	Cols        int
	Placements  []core.Placement
	Metadata    map[string]string
}

// Layout returns the core layout of the level.
func (l *Level) Layout() core.Layout {
	return core.Layout{
		ID:         l.ID,
		Rows:       l.Rows,
		Cols:       l.Cols,
		Placements: l.Placements,
	}
}

func formatError(code, format string, args ...any) *core.ValidationError {
	return &core.ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// parseGrid turns symbol rows into placements.
// The boundary ring must be made of walls; the board regenerates it, so ring
// cells produce no placements.
func parseGrid(lines []string) (rows, cols int, placements []core.Placement, err error) {
	rows = len(lines)
	if rows < core.MinRows {
		return 0, 0, nil, formatError(core.CodeBadDimensions, "grid has %d rows, want at least %d", rows, core.MinRows)
	}

	grid := make([][]rune, rows)
	for r, line := range lines {
		grid[r] = []rune(line)
	}
	cols = len(grid[0])
	if cols < core.MinCols {
		return 0, 0, nil, formatError(core.CodeBadDimensions, "grid has %d columns, want at least %d", cols, core.MinCols)
	}

	for r, row := range grid {
		if len(row) != cols {
			return 0, 0, nil, formatError(CodeRaggedGrid, "row %d has %d cells, want %d", r, len(row), cols)
		}
		for c, ch := range row {
			if r == 0 || r == rows-1 || c == 0 || c == cols-1 {
				if ch != WallSymbol {
					return 0, 0, nil, formatError(CodeNotWalled, "boundary cell (%d,%d) is %q, want %q", r, c, ch, WallSymbol)
				}
				continue
			}
			if core.IsEmptySymbol(ch) {
				continue
			}
			v, ok := core.ParseSymbol(ch)
			if !ok {
				return 0, 0, nil, formatError(core.CodeUnknownSymbol, "unknown symbol %q at (%d,%d)", ch, r, c)
			}
			placements = append(placements, core.Placement{Pos: core.C(r, c), Variant: v})
		}
	}

	return rows, cols, placements, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".l1t", ".txt", ".yaml", ".yml"}
}
