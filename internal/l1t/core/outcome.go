package core

// Status is the level status after an evaluation.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// LossReason explains a StatusLost outcome.
type LossReason uint8

const (
	LossNone   LossReason = iota
	LossDeath             // A beam hit the player
	LossZapper            // A zapper was lit
	LossQuit              // The player gave up
)

// String returns the string representation of a loss reason.
func (r LossReason) String() string {
	switch r {
	case LossNone:
		return "none"
	case LossDeath:
		return "death"
	case LossZapper:
		return "zapper"
	case LossQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome is the classified state of a level.
type Outcome struct {
	Status Status
	Reason LossReason
}

// InProgress, Won and Lost build outcomes.
func InProgress() Outcome            { return Outcome{Status: StatusInProgress} }
func Won() Outcome                   { return Outcome{Status: StatusWon} }
func Lost(reason LossReason) Outcome { return Outcome{Status: StatusLost, Reason: reason} }

// Terminal reports whether no further moves are accepted.
func (o Outcome) Terminal() bool {
	return o.Status != StatusInProgress
}

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	if o.Status == StatusLost {
		return "lost(" + o.Reason.String() + ")"
	}
	return o.Status.String()
}

// Evaluation is the result of one recomputation cycle.
type Evaluation struct {
	Beams    []Beam    // Beams of every laser enabled when the cycle started
	Disabled []*Object // Lasers switched off by a beam during this cycle
	Outcome  Outcome
}

// Evaluate recomputes every beam, applies its effects and classifies the level.
//
// Evaluation steps:
//  1. Clear the lit flag of every statue and zapper
//  2. Trace all enabled lasers once
//  3. Apply every terminal effect of that beam set: lasers hit go dark,
//     statues and zappers light up, a hit player dies. A laser disabled in
//     this step still lit what its beam reached
//  4. Classify with precedence Death > Zapper > Won > InProgress
//
// Laser disabling is sticky: Evaluate never re-enables a laser, so a laser
// switched off here emits nothing from the next cycle on.
func Evaluate(b *Board) Evaluation {
	for _, o := range b.ObjectsOf(KindStatue) {
		o.Statue().Lit = false
	}
	for _, o := range b.ObjectsOf(KindZapper) {
		o.Zapper().Lit = false
	}

	eval := Evaluation{Beams: TraceAll(b)}
	death := false
	for _, bm := range eval.Beams {
		if bm.Target == nil {
			continue
		}
		switch bm.Target.Kind() {
		case KindLaser:
			if l := bm.Target.Laser(); l.Enabled {
				l.Enabled = false
				eval.Disabled = append(eval.Disabled, bm.Target)
			}
		case KindStatue:
			bm.Target.Statue().Lit = true
		case KindZapper:
			bm.Target.Zapper().Lit = true
		case KindPlayer:
			death = true
		}
	}

	eval.Outcome = classify(b, death)
	return eval
}

// classify derives the level status from the current flags.
func classify(b *Board, death bool) Outcome {
	if death {
		return Lost(LossDeath)
	}
	for _, o := range b.ObjectsOf(KindZapper) {
		if o.Zapper().Lit {
			return Lost(LossZapper)
		}
	}
	if StatuesSatisfied(b) {
		return Won()
	}
	return InProgress()
}

// StatuesSatisfied reports whether every statue is in its winning state:
// normal statues lit and reversed statues unlit.
func StatuesSatisfied(b *Board) bool {
	for _, o := range b.ObjectsOf(KindStatue) {
		s := o.Statue()
		if s.Reversed == s.Lit {
			return false
		}
	}
	return true
}
