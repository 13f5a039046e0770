package core

// Kind identifies the variant of a game object.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindWall
	KindBlock
	KindMirror
	KindLaser
	KindSwitch
	KindButton
	KindToggleBlock
	KindStatue
	KindZapper
	KindCount // Sentinel value for iteration
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindWall:
		return "wall"
	case KindBlock:
		return "block"
	case KindMirror:
		return "mirror"
	case KindLaser:
		return "laser"
	case KindSwitch:
		return "switch"
	case KindButton:
		return "button"
	case KindToggleBlock:
		return "toggle-block"
	case KindStatue:
		return "statue"
	case KindZapper:
		return "zapper"
	default:
		return "unknown"
	}
}

// Movable reports whether objects of this kind ever change position.
func (k Kind) Movable() bool {
	switch k {
	case KindPlayer, KindBlock, KindMirror, KindLaser:
		return true
	default:
		return false
	}
}

// Pushable reports whether the player can push objects of this kind.
func (k Kind) Pushable() bool {
	switch k {
	case KindBlock, KindMirror, KindLaser:
		return true
	default:
		return false
	}
}

// Variant is the per-kind payload of an Object.
// Each kind has its own struct carrying only the fields relevant to it.
type Variant interface {
	Kind() Kind
	clone() Variant
}

// Player is the single player-controlled object.
type Player struct{}

// Wall is an immovable obstacle.
type Wall struct{}

// Block is a pushable obstacle.
type Block struct{}

// Mirror redirects beams by 90 degrees.
type Mirror struct {
	Orientation Orientation
}

// Laser emits a beam in Dir while Enabled.
type Laser struct {
	Enabled bool
	Dir     Dir
}

// Switch flips every toggle block when the player walks into it.
type Switch struct {
	On bool
}

// Button behaves like Switch and differs only in how it is drawn.
type Button struct {
	Pressed bool
}

// ToggleBlock blocks movement and beams unless Passable.
type ToggleBlock struct {
	Passable bool
}

// Statue must be lit to win, or unlit when Reversed.
type Statue struct {
	Lit      bool
	Reversed bool
}

// Zapper loses the level as soon as it is lit.
type Zapper struct {
	Lit bool
}

func (*Player) Kind() Kind      { return KindPlayer }
func (*Wall) Kind() Kind        { return KindWall }
func (*Block) Kind() Kind       { return KindBlock }
func (*Mirror) Kind() Kind      { return KindMirror }
func (*Laser) Kind() Kind       { return KindLaser }
func (*Switch) Kind() Kind      { return KindSwitch }
func (*Button) Kind() Kind      { return KindButton }
func (*ToggleBlock) Kind() Kind { return KindToggleBlock }
func (*Statue) Kind() Kind      { return KindStatue }
func (*Zapper) Kind() Kind      { return KindZapper }

func (v *Player) clone() Variant      { c := *v; return &c }
func (v *Wall) clone() Variant        { c := *v; return &c }
func (v *Block) clone() Variant       { c := *v; return &c }
func (v *Mirror) clone() Variant      { c := *v; return &c }
func (v *Laser) clone() Variant       { c := *v; return &c }
func (v *Switch) clone() Variant      { c := *v; return &c }
func (v *Button) clone() Variant      { c := *v; return &c }
func (v *ToggleBlock) clone() Variant { c := *v; return &c }
func (v *Statue) clone() Variant      { c := *v; return &c }
func (v *Zapper) clone() Variant      { c := *v; return &c }

// Object is a single entity placed on the board.
// ID is stable for the lifetime of a board and orders enumeration.
type Object struct {
	ID      int
	Pos     Coord
	Variant Variant
}

// Kind returns the object's variant kind.
func (o *Object) Kind() Kind {
	return o.Variant.Kind()
}

// Mirror returns the mirror payload, or nil if the object is not a mirror.
func (o *Object) Mirror() *Mirror {
	v, _ := o.Variant.(*Mirror)
	return v
}

// Laser returns the laser payload, or nil if the object is not a laser.
func (o *Object) Laser() *Laser {
	v, _ := o.Variant.(*Laser)
	return v
}

// Switch returns the switch payload, or nil if the object is not a switch.
func (o *Object) Switch() *Switch {
	v, _ := o.Variant.(*Switch)
	return v
}

// Button returns the button payload, or nil if the object is not a button.
func (o *Object) Button() *Button {
	v, _ := o.Variant.(*Button)
	return v
}

// ToggleBlock returns the toggle block payload, or nil.
func (o *Object) ToggleBlock() *ToggleBlock {
	v, _ := o.Variant.(*ToggleBlock)
	return v
}

// Statue returns the statue payload, or nil if the object is not a statue.
func (o *Object) Statue() *Statue {
	v, _ := o.Variant.(*Statue)
	return v
}

// Zapper returns the zapper payload, or nil if the object is not a zapper.
func (o *Object) Zapper() *Zapper {
	v, _ := o.Variant.(*Zapper)
	return v
}

// BlocksBeam reports whether a beam entering this object's cell stops there.
// Mirrors redirect instead and passable toggle blocks let the beam through.
func (o *Object) BlocksBeam() bool {
	switch o.Kind() {
	case KindMirror:
		return false
	case KindToggleBlock:
		return !o.ToggleBlock().Passable
	default:
		return true
	}
}

// Clone returns a deep copy of the object.
func (o *Object) Clone() *Object {
	return &Object{
		ID:      o.ID,
		Pos:     o.Pos,
		Variant: o.Variant.clone(),
	}
}
