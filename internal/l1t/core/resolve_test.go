package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/l1t/internal/l1t/core"
)

func TestResolveMoveStep(t *testing.T) {
	b := board(t,
		"IIIII",
		"IX.SI",
		"IIIII",
	)

	assert.Equal(t, core.MoveStepped, core.ResolveMove(b, core.DirRight))
	assert.Equal(t, core.C(1, 2), b.Player().Pos)

	// Statue and wall both refuse the player.
	assert.Equal(t, core.MoveBlocked, core.ResolveMove(b, core.DirRight))
	assert.Equal(t, core.MoveBlocked, core.ResolveMove(b, core.DirUp))
	assert.Equal(t, core.C(1, 2), b.Player().Pos)
}

func TestResolveMovePush(t *testing.T) {
	tests := []struct {
		name   string
		row    string
		result core.MoveResult
		player core.Coord
	}{
		{"block into empty cell", "IXB..I", core.MovePushed, core.C(1, 2)},
		{"mirror into empty cell", `IX\..I`, core.MovePushed, core.C(1, 2)},
		{"laser into empty cell", "IX6..I", core.MovePushed, core.C(1, 2)},
		{"block against wall ring", "I..XBI", core.MoveBlocked, core.C(1, 3)},
		{"block against block", "IXBB.I", core.MoveBlocked, core.C(1, 1)},
		{"block against passable toggle", "IXBt.I", core.MoveBlocked, core.C(1, 1)},
		{"block against statue", "IXBS.I", core.MoveBlocked, core.C(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session(t, nil,
				"IIIIII",
				tt.row,
				"I...SI",
				"IIIIII",
			)
			before := s.Snapshot()

			res := s.Move(core.DirRight)
			assert.Equal(t, tt.result, res.Move)
			assert.Equal(t, tt.player, s.Board().Player().Pos)

			if tt.result == core.MoveBlocked {
				assert.Equal(t, before, s.Snapshot(), "blocked push changed the board")
				assert.Equal(t, 0, s.Moves())

				// Repeating an illegal push is still a no-op.
				s.Move(core.DirRight)
				assert.Equal(t, before, s.Snapshot())
				return
			}

			pushed := mustAt(t, s.Board(), tt.player.Step(core.DirRight))
			assert.True(t, pushed.Kind().Pushable())
			assert.Equal(t, 1, s.Moves())
		})
	}
}

func TestSwitchIsInvolution(t *testing.T) {
	for _, sym := range []string{"s", "b"} {
		t.Run(sym, func(t *testing.T) {
			b := board(t,
				"IIIIII",
				"IX"+sym+"T.I",
				"I.tT.I",
				"IS...I",
				"IIIIII",
			)
			passable := func() []bool {
				var out []bool
				for _, o := range b.ObjectsOf(core.KindToggleBlock) {
					out = append(out, o.ToggleBlock().Passable)
				}
				return out
			}
			initial := passable()
			require.Equal(t, []bool{false, true, false}, initial)

			assert.Equal(t, core.MoveToggled, core.ResolveMove(b, core.DirRight))
			assert.Equal(t, []bool{true, false, true}, passable())
			assert.Equal(t, core.C(1, 1), b.Player().Pos, "the player stays in place")

			assert.Equal(t, core.MoveToggled, core.ResolveMove(b, core.DirRight))
			assert.Equal(t, initial, passable())
		})
	}
}

func TestSwitchFlag(t *testing.T) {
	b := board(t,
		"IIIII",
		"IXsbI",
		"I..TI",
		"IIIII",
	)
	sw := mustAt(t, b, core.C(1, 2)).Switch()
	require.NotNil(t, sw)

	core.ResolveMove(b, core.DirRight)
	assert.True(t, sw.On)
	core.ResolveMove(b, core.DirRight)
	assert.False(t, sw.On)
}

func TestPlayerOnToggleBlock(t *testing.T) {
	b := board(t,
		"IIIII",
		"IXtsI",
		"I...I",
		"I.S.I",
		"IIIII",
	)

	require.Equal(t, core.MoveStepped, core.ResolveMove(b, core.DirRight))
	assert.Equal(t, core.C(1, 2), b.Player().Pos)
	assert.Equal(t, core.KindPlayer, mustAt(t, b, core.C(1, 2)).Kind())

	// The switch turns the block solid under the player.
	require.Equal(t, core.MoveToggled, core.ResolveMove(b, core.DirRight))
	tb, ok := b.FixedAt(core.C(1, 2))
	require.True(t, ok)
	assert.False(t, tb.ToggleBlock().Passable)
	assert.Equal(t, core.C(1, 2), b.Player().Pos)

	// The player can still walk off, but not back on.
	assert.Equal(t, core.MoveStepped, core.ResolveMove(b, core.DirLeft))
	assert.Equal(t, core.MoveBlocked, core.ResolveMove(b, core.DirRight))
	assert.Equal(t, core.C(1, 1), b.Player().Pos)
}

func TestResolveToggleAdjacent(t *testing.T) {
	b := board(t,
		"IIIIII",
		`I.\..I`,
		"I6Xs.I",
		"I.T..I",
		"IIIIII",
	)
	mirror := mustAt(t, b, core.C(1, 2)).Mirror()
	laser := mustAt(t, b, core.C(2, 1)).Laser()
	sw := mustAt(t, b, core.C(2, 3)).Switch()
	tb := mustAt(t, b, core.C(3, 2)).ToggleBlock()

	assert.Equal(t, core.MoveAdjusted, core.ResolveToggleAdjacent(b))
	assert.Equal(t, core.Forward, mirror.Orientation)
	assert.True(t, laser.Enabled)
	assert.False(t, sw.On, "switches only react to being walked into")
	assert.False(t, tb.Passable)

	assert.Equal(t, core.MoveAdjusted, core.ResolveToggleAdjacent(b))
	assert.Equal(t, core.Backward, mirror.Orientation)
	assert.False(t, laser.Enabled)
}

func TestResolveToggleAdjacentNothingNear(t *testing.T) {
	b := board(t,
		"IIIII",
		"I...I",
		"I.X.I",
		"I...I",
		"I..SI",
		"IIIII",
	)
	assert.Equal(t, core.MoveBlocked, core.ResolveToggleAdjacent(b))
}
