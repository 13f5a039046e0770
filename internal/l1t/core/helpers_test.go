package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/l1t/internal/l1t/core"
)

// grid builds a layout from level-file rows.
func grid(t *testing.T, rows ...string) core.Layout {
	t.Helper()
	require.NotEmpty(t, rows)

	l := core.Layout{ID: "test", Rows: len(rows), Cols: len(rows[0])}
	for r, line := range rows {
		require.Lenf(t, line, l.Cols, "row %d", r)
		for c, ch := range line {
			if core.IsEmptySymbol(ch) {
				continue
			}
			v, ok := core.ParseSymbol(ch)
			require.Truef(t, ok, "unknown symbol %q at (%d,%d)", ch, r, c)
			l.Placements = append(l.Placements, core.Placement{Pos: core.C(r, c), Variant: v})
		}
	}
	return l
}

// board builds a board from level-file rows.
func board(t *testing.T, rows ...string) *core.Board {
	t.Helper()
	b, err := core.NewBoard(grid(t, rows...))
	require.NoError(t, err)
	return b
}

// session builds a session from level-file rows.
func session(t *testing.T, tracker core.ProgressTracker, rows ...string) *core.Session {
	t.Helper()
	s, err := core.NewSession(grid(t, rows...), tracker)
	require.NoError(t, err)
	return s
}

// mustAt returns the object at c or fails the test.
func mustAt(t *testing.T, b *core.Board, c core.Coord) *core.Object {
	t.Helper()
	o, ok := b.At(c)
	require.Truef(t, ok, "no object at %v", c)
	return o
}

type completion struct {
	levelID string
	moves   int
}

// recorder is a ProgressTracker that keeps every call.
type recorder struct {
	calls []completion
}

func (r *recorder) LevelCompleted(levelID string, moves int) {
	r.calls = append(r.calls, completion{levelID: levelID, moves: moves})
}
