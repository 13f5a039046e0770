package core

import "fmt"

// Construction error codes.
const (
	CodeBadDimensions   = "BAD_DIMENSIONS"
	CodeNoPlayer        = "NO_PLAYER"
	CodeMultiplePlayers = "MULTIPLE_PLAYERS"
	CodeOutOfBounds     = "OUT_OF_BOUNDS"
	CodeOverlap         = "OVERLAP"
	CodeUnknownSymbol   = "UNKNOWN_SYMBOL"
	CodeNilVariant      = "NIL_VARIANT"
)

// MinRows and MinCols are the smallest grids with a non-empty interior.
const (
	MinRows = 3
	MinCols = 3
)

// ValidationError contains details about a level that cannot be built.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// ValidateLayout checks the placement invariants of a layout without building it:
// grid dimensions, a single player, interior placement and no overlaps.
func ValidateLayout(l Layout) error {
	if l.Rows < MinRows || l.Cols < MinCols {
		return invalid(CodeBadDimensions, "grid %dx%d is smaller than %dx%d", l.Rows, l.Cols, MinRows, MinCols)
	}

	players := 0
	seen := make(map[Coord]Kind, len(l.Placements))
	for _, p := range l.Placements {
		if p.Variant == nil {
			return invalid(CodeNilVariant, "placement at %v has no variant", p.Pos)
		}
		kind := p.Variant.Kind()
		if kind == KindPlayer {
			players++
		}

		inRing := onRing(l.Rows, l.Cols, p.Pos)
		inGrid := p.Pos.Row >= 0 && p.Pos.Row < l.Rows && p.Pos.Col >= 0 && p.Pos.Col < l.Cols
		switch {
		case !inGrid:
			return invalid(CodeOutOfBounds, "%s at %v is outside the %dx%d grid", kind, p.Pos, l.Rows, l.Cols)
		case inRing && kind != KindWall:
			return invalid(CodeOutOfBounds, "%s at %v sits on the boundary wall", kind, p.Pos)
		case inRing:
			// The ring is walled by construction.
			continue
		}

		if prev, ok := seen[p.Pos]; ok {
			return invalid(CodeOverlap, "%s and %s both placed at %v", prev, kind, p.Pos)
		}
		seen[p.Pos] = kind
	}

	switch {
	case players == 0:
		return invalid(CodeNoPlayer, "level has no player")
	case players > 1:
		return invalid(CodeMultiplePlayers, "level has %d players, want 1", players)
	}
	return nil
}

// onRing reports whether c lies on the boundary ring of a rows x cols grid.
func onRing(rows, cols int, c Coord) bool {
	return c.Row == 0 || c.Row == rows-1 || c.Col == 0 || c.Col == cols-1
}
