package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/l1t/internal/l1t/core"
)

func TestValidateLayout(t *testing.T) {
	player := core.Placement{Pos: core.C(1, 1), Variant: &core.Player{}}

	tests := []struct {
		name   string
		layout core.Layout
		code   string
	}{
		{
			name:   "too small",
			layout: core.Layout{Rows: 2, Cols: 5, Placements: []core.Placement{player}},
			code:   core.CodeBadDimensions,
		},
		{
			name:   "no player",
			layout: core.Layout{Rows: 3, Cols: 3},
			code:   core.CodeNoPlayer,
		},
		{
			name: "two players",
			layout: core.Layout{Rows: 3, Cols: 4, Placements: []core.Placement{
				player,
				{Pos: core.C(1, 2), Variant: &core.Player{}},
			}},
			code: core.CodeMultiplePlayers,
		},
		{
			name: "outside the grid",
			layout: core.Layout{Rows: 3, Cols: 3, Placements: []core.Placement{
				player,
				{Pos: core.C(5, 5), Variant: &core.Wall{}},
			}},
			code: core.CodeOutOfBounds,
		},
		{
			name: "block on the ring",
			layout: core.Layout{Rows: 3, Cols: 3, Placements: []core.Placement{
				player,
				{Pos: core.C(0, 1), Variant: &core.Block{}},
			}},
			code: core.CodeOutOfBounds,
		},
		{
			name: "overlap",
			layout: core.Layout{Rows: 3, Cols: 3, Placements: []core.Placement{
				player,
				{Pos: core.C(1, 1), Variant: &core.Block{}},
			}},
			code: core.CodeOverlap,
		},
		{
			name: "nil variant",
			layout: core.Layout{Rows: 3, Cols: 3, Placements: []core.Placement{
				player,
				{Pos: core.C(1, 1)},
			}},
			code: core.CodeNilVariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.NewBoard(tt.layout)
			var verr *core.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Code != tt.code {
				t.Errorf("code = %s, want %s (%v)", verr.Code, tt.code, err)
			}
		})
	}
}

func TestNewBoardWallsTheRing(t *testing.T) {
	b, err := core.NewBoard(core.Layout{
		Rows: 3,
		Cols: 4,
		Placements: []core.Placement{
			{Pos: core.C(1, 1), Variant: &core.Player{}},
			{Pos: core.C(0, 0), Variant: &core.Wall{}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 10, b.Count(core.KindWall), "ring walls are merged, not duplicated")
	assert.True(t, b.InBounds(core.C(0, 3)))
	assert.False(t, b.InInterior(core.C(0, 3)))
	assert.True(t, b.InInterior(core.C(1, 2)))
	assert.False(t, b.Occupied(core.C(1, 2)))
}

func TestBoardLookups(t *testing.T) {
	b := board(t,
		"IIIIII",
		"IS.X.I",
		"I.I.SI",
		"IIIIII",
	)

	assert.Equal(t, core.C(1, 3), b.Player().Pos)
	statues := b.ObjectsOf(core.KindStatue)
	require.Len(t, statues, 2)
	assert.Equal(t, core.C(1, 1), statues[0].Pos)
	assert.Equal(t, core.C(2, 4), statues[1].Pos)
	assert.Equal(t, core.KindWall, mustAt(t, b, core.C(2, 2)).Kind())
	assert.Nil(t, b.ObjectsOf(core.KindCount))

	for i, o := range b.Objects() {
		assert.Equal(t, i, o.ID, "objects are kept in ID order")
	}
}

func TestBoardMoveRules(t *testing.T) {
	b := board(t,
		"IIIIII",
		"IXBS.I",
		"IIIIII",
	)
	player := b.Player()
	statue := mustAt(t, b, core.C(1, 3))

	assert.False(t, b.Move(player, core.C(1, 2)), "cell taken by a block")
	assert.False(t, b.Move(player, core.C(0, 1)), "the ring is never entered")
	assert.False(t, b.Move(statue, core.C(1, 4)), "statues are fixed")
	assert.True(t, b.Move(player, core.C(1, 4)))
	assert.Equal(t, core.C(1, 4), player.Pos)
	assert.False(t, b.Occupied(core.C(1, 1)))
}

func TestBoardClone(t *testing.T) {
	b := board(t,
		"IIIII",
		"IX/SI",
		"IIIII",
	)
	c := b.Clone()

	core.ResolveToggleAdjacent(c)
	assert.Equal(t, core.Backward, mustAt(t, c, core.C(1, 2)).Mirror().Orientation)
	assert.Equal(t, core.Forward, mustAt(t, b, core.C(1, 2)).Mirror().Orientation)
	assert.NotSame(t, b.Player(), c.Player())
}

func TestSymbolTable(t *testing.T) {
	for _, r := range `XIBTtsbSRZ/\12345678` {
		v, ok := core.ParseSymbol(r)
		require.Truef(t, ok, "symbol %q", r)
		o := &core.Object{Variant: v}
		if got := core.Symbol(o); got != r {
			t.Errorf("Symbol(ParseSymbol(%q)) = %q", r, got)
		}
	}

	laser, _ := core.ParseSymbol('7')
	assert.Equal(t, &core.Laser{Enabled: false, Dir: core.DirLeft}, laser)

	for _, r := range []rune{' ', '.'} {
		_, ok := core.ParseSymbol(r)
		assert.False(t, ok)
		assert.True(t, core.IsEmptySymbol(r))
	}
	_, ok := core.ParseSymbol('?')
	assert.False(t, ok)
	assert.False(t, core.IsEmptySymbol('?'))
}
