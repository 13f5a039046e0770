package core

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// CommandKind represents the type of a player command.
type CommandKind uint8

const (
	CmdMove    CommandKind = iota // Move or push in Dir
	CmdToggle                     // Flip adjacent lasers and mirrors
	CmdRestart                    // Rebuild the level from its layout
	CmdQuit                       // Give up the level
)

// String returns the string representation of a command kind.
func (k CommandKind) String() string {
	switch k {
	case CmdMove:
		return "move"
	case CmdToggle:
		return "toggle"
	case CmdRestart:
		return "restart"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Command is one player intent. Exactly one command is applied per turn.
type Command struct {
	Kind CommandKind
	Dir  Dir // Only used by CmdMove
}

// MoveCmd, ToggleCmd, RestartCmd and QuitCmd build commands.
func MoveCmd(d Dir) Command { return Command{Kind: CmdMove, Dir: d} }
func ToggleCmd() Command    { return Command{Kind: CmdToggle} }
func RestartCmd() Command   { return Command{Kind: CmdRestart} }
func QuitCmd() Command      { return Command{Kind: CmdQuit} }

// ProgressTracker receives level completions.
// LevelCompleted is called exactly once each time a session reaches Won.
type ProgressTracker interface {
	LevelCompleted(levelID string, moves int)
}

// TurnResult contains information about what happened during one turn.
type TurnResult struct {
	Command   Command
	Move      MoveResult
	Rejected  bool      // The session was already terminal; nothing was applied
	Disabled  []*Object // Lasers switched off by beams this turn
	Outcome   Outcome
	Completed bool // This turn moved the session into Won
}

// Session is one play-through of a level: the board, its latest beams and
// outcome, and the move counter. A Session has a single owner and is not
// safe for concurrent use.
type Session struct {
	layout  Layout
	initial *Board // Never played on; restarts clone it
	board   *Board
	beams   []Beam
	outcome Outcome
	moves   int
	tracker ProgressTracker
}

// NewSession builds a board from the layout and evaluates it once.
// The tracker may be nil.
func NewSession(layout Layout, tracker ProgressTracker) (*Session, error) {
	initial, err := NewBoard(layout)
	if err != nil {
		return nil, err
	}
	s := &Session{layout: layout, initial: initial, tracker: tracker}
	s.reset()
	return s, nil
}

// reset replaces the board with a fresh copy of the initial one.
func (s *Session) reset() {
	s.board = s.initial.Clone()
	s.moves = 0
	eval := Evaluate(s.board)
	s.beams = eval.Beams
	s.outcome = eval.Outcome
}

// Apply resolves one command and recomputes every beam.
// Move and toggle commands are rejected once the outcome is terminal.
func (s *Session) Apply(cmd Command) TurnResult {
	result := TurnResult{Command: cmd}

	switch cmd.Kind {
	case CmdRestart:
		s.reset()
		result.Outcome = s.outcome
		return result

	case CmdQuit:
		if !s.outcome.Terminal() {
			s.outcome = Lost(LossQuit)
		} else {
			result.Rejected = true
		}
		result.Outcome = s.outcome
		return result
	}

	if s.outcome.Terminal() {
		result.Rejected = true
		result.Outcome = s.outcome
		return result
	}

	switch cmd.Kind {
	case CmdMove:
		result.Move = ResolveMove(s.board, cmd.Dir)
	case CmdToggle:
		result.Move = ResolveToggleAdjacent(s.board)
	default:
		result.Move = MoveBlocked
	}
	if result.Move.Changed() {
		s.moves++
	}

	eval := Evaluate(s.board)
	s.beams = eval.Beams
	s.outcome = eval.Outcome
	result.Disabled = eval.Disabled
	result.Outcome = eval.Outcome

	if s.outcome.Status == StatusWon {
		result.Completed = true
		if s.tracker != nil {
			s.tracker.LevelCompleted(s.layout.ID, s.moves)
		}
	}
	return result
}

// Move applies a move command.
func (s *Session) Move(d Dir) TurnResult { return s.Apply(MoveCmd(d)) }

// ToggleAdjacent applies a toggle command.
func (s *Session) ToggleAdjacent() TurnResult { return s.Apply(ToggleCmd()) }

// Restart discards all progress and rebuilds the level.
func (s *Session) Restart() TurnResult { return s.Apply(RestartCmd()) }

// Quit marks an unfinished session as lost.
func (s *Session) Quit() TurnResult { return s.Apply(QuitCmd()) }

// LevelID returns the ID of the layout being played.
func (s *Session) LevelID() string { return s.layout.ID }

// Layout returns the initial layout of the level.
func (s *Session) Layout() Layout { return s.layout }

// Board returns the current board. Callers must treat it as read-only.
func (s *Session) Board() *Board { return s.board }

// Beams returns the beams of the latest evaluation.
func (s *Session) Beams() []Beam { return s.beams }

// Outcome returns the latest outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// Moves returns the number of turns that changed the board since the last restart.
func (s *Session) Moves() int { return s.moves }

// Snapshot returns a hash of the board state and outcome.
// Two sessions with equal snapshots render identically.
func (s *Session) Snapshot() uint64 {
	h := xxhash.New()

	fmt.Fprintf(h, "G:%dx%d;", s.board.Rows, s.board.Cols)
	for _, o := range s.board.Objects() {
		fmt.Fprintf(h, "%d:%d:%d:%d:%s,", o.ID, o.Kind(), o.Pos.Row, o.Pos.Col, variantState(o.Variant))
	}
	fmt.Fprintf(h, ";O:%d:%d", s.outcome.Status, s.outcome.Reason)

	return h.Sum64()
}

// variantState encodes the mutable flags of a variant.
func variantState(v Variant) string {
	switch x := v.(type) {
	case *Mirror:
		return fmt.Sprint(x.Orientation)
	case *Laser:
		return fmt.Sprintf("%v/%d", x.Enabled, x.Dir)
	case *Switch:
		return fmt.Sprint(x.On)
	case *Button:
		return fmt.Sprint(x.Pressed)
	case *ToggleBlock:
		return fmt.Sprint(x.Passable)
	case *Statue:
		return fmt.Sprintf("%v/%v", x.Lit, x.Reversed)
	case *Zapper:
		return fmt.Sprint(x.Lit)
	default:
		return ""
	}
}
