package core

// Symbol returns the level-file rune of an object in its current state.
//
// Symbol table:
//
//	X player     I wall        B block
//	T toggle     t open toggle s switch   b button
//	S statue     R reversed    Z zapper
//	/ \ mirrors  1-4 lasers facing Up/Down/Left/Right, 5-8 the same lasers off
func Symbol(o *Object) rune {
	switch v := o.Variant.(type) {
	case *Player:
		return 'X'
	case *Wall:
		return 'I'
	case *Block:
		return 'B'
	case *ToggleBlock:
		if v.Passable {
			return 't'
		}
		return 'T'
	case *Switch:
		return 's'
	case *Button:
		return 'b'
	case *Statue:
		if v.Reversed {
			return 'R'
		}
		return 'S'
	case *Zapper:
		return 'Z'
	case *Mirror:
		if v.Orientation == Forward {
			return '/'
		}
		return '\\'
	case *Laser:
		r := laserRunes[v.Dir]
		if !v.Enabled {
			r += 4
		}
		return r
	default:
		return '?'
	}
}

// laserRunes maps an enabled laser's direction to its symbol.
var laserRunes = map[Dir]rune{
	DirUp:    '1',
	DirDown:  '2',
	DirLeft:  '3',
	DirRight: '4',
}

// IsEmptySymbol reports whether r marks an empty cell.
func IsEmptySymbol(r rune) bool {
	return r == ' ' || r == '.'
}

// ParseSymbol returns a fresh variant for a level-file rune.
// It returns false for empty cells and unknown runes; use IsEmptySymbol to tell them apart.
func ParseSymbol(r rune) (Variant, bool) {
	switch r {
	case 'X':
		return &Player{}, true
	case 'I':
		return &Wall{}, true
	case 'B':
		return &Block{}, true
	case 'T':
		return &ToggleBlock{}, true
	case 't':
		return &ToggleBlock{Passable: true}, true
	case 's':
		return &Switch{}, true
	case 'b':
		return &Button{}, true
	case 'S':
		return &Statue{}, true
	case 'R':
		return &Statue{Reversed: true}, true
	case 'Z':
		return &Zapper{}, true
	case '/':
		return &Mirror{Orientation: Forward}, true
	case '\\':
		return &Mirror{Orientation: Backward}, true
	case '1', '2', '3', '4', '5', '6', '7', '8':
		idx := int(r - '1')
		dir := []Dir{DirUp, DirDown, DirLeft, DirRight}[idx%4]
		return &Laser{Enabled: idx < 4, Dir: dir}, true
	default:
		return nil, false
	}
}
