package core

// MoveResult describes what a player action did to the board.
type MoveResult uint8

const (
	MoveBlocked  MoveResult = iota // Nothing changed
	MoveStepped                    // Player moved into an empty or passable cell
	MovePushed                     // Player moved and pushed an object ahead
	MoveToggled                    // Player flipped a switch or button in place
	MoveAdjusted                   // Player flipped adjacent lasers or mirrors
)

// String returns the string representation of a move result.
func (r MoveResult) String() string {
	switch r {
	case MoveBlocked:
		return "blocked"
	case MoveStepped:
		return "stepped"
	case MovePushed:
		return "pushed"
	case MoveToggled:
		return "toggled"
	case MoveAdjusted:
		return "adjusted"
	default:
		return "unknown"
	}
}

// Changed reports whether the board was mutated.
func (r MoveResult) Changed() bool {
	return r != MoveBlocked
}

// ResolveMove applies one directional player intent to the board.
//
// Movement rules:
//  1. Empty target: the player steps into it
//  2. Switch or button: its flag flips along with every toggle block; the player stays
//  3. Toggle block: the player steps onto it only while it is passable
//  4. Block, mirror or laser: pushed one cell if the cell beyond is interior and empty
//  5. Anything else (wall, statue, zapper): nothing happens
func ResolveMove(b *Board, d Dir) MoveResult {
	player := b.Player()
	if player == nil {
		return MoveBlocked
	}
	target := player.Pos.Step(d)

	occupant, ok := b.At(target)
	if !ok {
		if b.Move(player, target) {
			return MoveStepped
		}
		return MoveBlocked
	}

	switch occupant.Kind() {
	case KindSwitch:
		s := occupant.Switch()
		s.On = !s.On
		FlipToggleBlocks(b)
		return MoveToggled

	case KindButton:
		btn := occupant.Button()
		btn.Pressed = !btn.Pressed
		FlipToggleBlocks(b)
		return MoveToggled

	case KindToggleBlock:
		if occupant.ToggleBlock().Passable && b.Move(player, target) {
			return MoveStepped
		}
		return MoveBlocked

	case KindBlock, KindMirror, KindLaser:
		beyond := target.Step(d)
		if !b.InInterior(beyond) || b.Occupied(beyond) {
			return MoveBlocked
		}
		b.Move(occupant, beyond)
		b.Move(player, target)
		return MovePushed

	case KindPlayer, KindWall, KindStatue, KindZapper:
		return MoveBlocked

	default:
		return MoveBlocked
	}
}

// FlipToggleBlocks flips the passable flag of every toggle block on the board.
// Switches and buttons are bound to all toggle blocks of a level.
func FlipToggleBlocks(b *Board) {
	for _, o := range b.ObjectsOf(KindToggleBlock) {
		t := o.ToggleBlock()
		t.Passable = !t.Passable
	}
}

// ResolveToggleAdjacent flips the lasers and mirrors orthogonally adjacent to
// the player: lasers are switched on or off, mirrors change orientation.
// Switches and buttons only react to being walked into.
func ResolveToggleAdjacent(b *Board) MoveResult {
	player := b.Player()
	if player == nil {
		return MoveBlocked
	}

	result := MoveBlocked
	for _, c := range player.Pos.Neighbours() {
		o, ok := b.At(c)
		if !ok {
			continue
		}
		switch o.Kind() {
		case KindLaser:
			l := o.Laser()
			l.Enabled = !l.Enabled
			result = MoveAdjusted
		case KindMirror:
			m := o.Mirror()
			m.Orientation = m.Orientation.Flip()
			result = MoveAdjusted
		}
	}
	return result
}
