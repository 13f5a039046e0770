// Package core provides the simulation core of the l1t laser puzzle.
// This package is UI-agnostic and deterministic: it owns the object model,
// beam tracing, move resolution and outcome evaluation, and nothing else.
package core

// Dir represents one of the four grid directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (drow, dcol) unit vector for this direction.
// Up decreases the row, Down increases it (screen coordinates).
func (d Dir) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirRight:
		return 0, 1
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return d
	}
}

// Vertical reports whether the direction moves along a column.
func (d Dir) Vertical() bool {
	return d == DirUp || d == DirDown
}

// DirFromDelta converts a unit vector back into a direction.
func DirFromDelta(dr, dc int) (Dir, bool) {
	switch {
	case dr == -1 && dc == 0:
		return DirUp, true
	case dr == 0 && dc == 1:
		return DirRight, true
	case dr == 1 && dc == 0:
		return DirDown, true
	case dr == 0 && dc == -1:
		return DirLeft, true
	default:
		return DirUp, false
	}
}

// AllDirs returns the four directions in clockwise order starting at Up.
func AllDirs() []Dir {
	return []Dir{DirUp, DirRight, DirDown, DirLeft}
}

// Orientation is the diagonal a mirror is set along.
type Orientation uint8

const (
	Forward  Orientation = iota // '/'
	Backward                    // '\'
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	if o == Forward {
		return "Forward"
	}
	return "Backward"
}

// Flip returns the other orientation.
func (o Orientation) Flip() Orientation {
	if o == Forward {
		return Backward
	}
	return Forward
}
