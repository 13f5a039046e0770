package core

// Placement is one object of a level layout before the board is built.
type Placement struct {
	Pos     Coord
	Variant Variant
}

// Layout is the loader's description of a level: grid size plus initial objects.
// A Layout is never mutated by play; boards are built from copies of it.
type Layout struct {
	ID         string
	Rows       int
	Cols       int
	Placements []Placement
}

// Board is the grid object model: every object of a level indexed by coordinate.
//
// Cells hold at most one object, with one exception: the player may stand on a
// passable toggle block. Objects are kept in two layers so that case needs no
// special storage: movable kinds (player, block, mirror, laser) and fixed kinds.
type Board struct {
	Rows int
	Cols int

	objects []*Object // ID order
	movable map[Coord]*Object
	fixed   map[Coord]*Object
	byKind  [KindCount][]*Object
	player  *Object
}

// NewBoard builds a board from a layout. The boundary ring is walled
// automatically; wall placements on the ring are merged into it.
// Variants are copied, so the layout can be reused to restart.
func NewBoard(l Layout) (*Board, error) {
	if err := ValidateLayout(l); err != nil {
		return nil, err
	}

	b := &Board{
		Rows:    l.Rows,
		Cols:    l.Cols,
		movable: make(map[Coord]*Object),
		fixed:   make(map[Coord]*Object),
	}

	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			if onRing(l.Rows, l.Cols, C(r, c)) {
				b.add(C(r, c), &Wall{})
			}
		}
	}

	for _, p := range l.Placements {
		if onRing(l.Rows, l.Cols, p.Pos) {
			continue
		}
		b.add(p.Pos, p.Variant.clone())
	}

	return b, nil
}

// add appends an object with the next ID. Callers guarantee the cell is free.
func (b *Board) add(pos Coord, v Variant) *Object {
	o := &Object{ID: len(b.objects), Pos: pos, Variant: v}
	b.objects = append(b.objects, o)
	b.layer(o.Kind())[pos] = o
	b.byKind[o.Kind()] = append(b.byKind[o.Kind()], o)
	if o.Kind() == KindPlayer {
		b.player = o
	}
	return o
}

func (b *Board) layer(k Kind) map[Coord]*Object {
	if k.Movable() {
		return b.movable
	}
	return b.fixed
}

// InBounds returns true if the coordinate is on the grid, ring included.
func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// InInterior returns true if the coordinate is strictly inside the wall ring.
func (b *Board) InInterior(c Coord) bool {
	return c.Row >= 1 && c.Row <= b.Rows-2 && c.Col >= 1 && c.Col <= b.Cols-2
}

// At returns the object occupying c. A movable object standing on a fixed one
// (the player on a passable toggle block) is returned in preference.
func (b *Board) At(c Coord) (*Object, bool) {
	if o, ok := b.movable[c]; ok {
		return o, true
	}
	o, ok := b.fixed[c]
	return o, ok
}

// FixedAt returns the fixed-layer object at c, if any.
func (b *Board) FixedAt(c Coord) (*Object, bool) {
	o, ok := b.fixed[c]
	return o, ok
}

// Occupied returns true if any object is at c.
func (b *Board) Occupied(c Coord) bool {
	_, ok := b.At(c)
	return ok
}

// Player returns the player object.
func (b *Board) Player() *Object {
	return b.player
}

// Objects returns every object in ID order. The slice must not be modified.
func (b *Board) Objects() []*Object {
	return b.objects
}

// ObjectsOf returns the objects of one kind in ID order.
func (b *Board) ObjectsOf(k Kind) []*Object {
	if k >= KindCount {
		return nil
	}
	return b.byKind[k]
}

// Count returns the number of objects of one kind.
func (b *Board) Count(k Kind) int {
	return len(b.ObjectsOf(k))
}

// Move relocates a movable object. It fails if the object is fixed, the
// destination is outside the interior, or the destination is taken. The player
// is additionally allowed onto a cell whose only occupant is a passable toggle block.
func (b *Board) Move(o *Object, to Coord) bool {
	if !o.Kind().Movable() || !b.InInterior(to) {
		return false
	}
	if _, ok := b.movable[to]; ok {
		return false
	}
	if f, ok := b.fixed[to]; ok {
		standable := o.Kind() == KindPlayer && f.Kind() == KindToggleBlock && f.ToggleBlock().Passable
		if !standable {
			return false
		}
	}

	delete(b.movable, o.Pos)
	o.Pos = to
	b.movable[to] = o
	return true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{
		Rows:    b.Rows,
		Cols:    b.Cols,
		objects: make([]*Object, 0, len(b.objects)),
		movable: make(map[Coord]*Object, len(b.movable)),
		fixed:   make(map[Coord]*Object, len(b.fixed)),
	}
	for _, o := range b.objects {
		cp := o.Clone()
		c.objects = append(c.objects, cp)
		c.layer(cp.Kind())[cp.Pos] = cp
		c.byKind[cp.Kind()] = append(c.byKind[cp.Kind()], cp)
		if cp.Kind() == KindPlayer {
			c.player = cp
		}
	}
	return c
}
