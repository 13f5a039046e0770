package core

// BeamCell is one cell crossed by a beam.
// Heading is the direction the beam was travelling when it entered the cell.
type BeamCell struct {
	Pos     Coord
	Heading Dir
}

// Beam is the traced path of one laser.
type Beam struct {
	Source *Object    // The emitting laser
	Path   []BeamCell // Cells in order, starting one step from the source
	Target *Object    // First non-mirror occupant hit; nil if the wall ring absorbed the beam
}

// Lethal reports whether the beam ends on the player.
func (bm Beam) Lethal() bool {
	return bm.Target != nil && bm.Target.Kind() == KindPlayer
}

// End returns the last cell of the path and false if the path is empty.
func (bm Beam) End() (BeamCell, bool) {
	if len(bm.Path) == 0 {
		return BeamCell{}, false
	}
	return bm.Path[len(bm.Path)-1], true
}

// Reflect returns the heading of a beam after it enters a mirror.
//
//	Forward  '/': (dr, dc) -> (-dc, -dr)
//	Backward '\': (dr, dc) -> ( dc,  dr)
func Reflect(d Dir, o Orientation) Dir {
	dr, dc := d.Delta()
	var nr, nc int
	if o == Forward {
		nr, nc = -dc, -dr
	} else {
		nr, nc = dc, dr
	}
	out, _ := DirFromDelta(nr, nc)
	return out
}

// TraceBeam walks the beam of a laser across the board.
//
// Trace rules:
//  1. Step from the laser's cell in its direction
//  2. A step onto the wall ring ends the beam with no target
//  3. Each interior cell reached is recorded
//  4. A mirror turns the beam and the walk continues from the mirror's cell
//  5. A passable toggle block is crossed like an empty cell
//  6. Any other occupant ends the beam and becomes its target
//
// The laser's enabled flag is not consulted; TraceAll filters on it.
func TraceBeam(b *Board, laser *Object) Beam {
	beam := Beam{Source: laser}
	l := laser.Laser()
	if l == nil {
		return beam
	}

	pos := laser.Pos
	heading := l.Dir
	// A revisited (cell, heading) pair can only come from a cycle.
	visited := make(map[BeamCell]bool)

	for {
		next := pos.Step(heading)
		if !b.InInterior(next) {
			return beam
		}

		cell := BeamCell{Pos: next, Heading: heading}
		if visited[cell] {
			return beam
		}
		visited[cell] = true
		beam.Path = append(beam.Path, cell)
		pos = next

		occupant, ok := b.At(pos)
		if !ok {
			continue
		}
		if m := occupant.Mirror(); m != nil {
			heading = Reflect(heading, m.Orientation)
			continue
		}
		if !occupant.BlocksBeam() {
			continue
		}
		beam.Target = occupant
		return beam
	}
}

// TraceAll traces every enabled laser, in laser ID order.
func TraceAll(b *Board) []Beam {
	lasers := b.ObjectsOf(KindLaser)
	beams := make([]Beam, 0, len(lasers))
	for _, o := range lasers {
		if !o.Laser().Enabled {
			continue
		}
		beams = append(beams, TraceBeam(b, o))
	}
	return beams
}
