package core

import "testing"

func TestInputFrame(t *testing.T) {
	var zero InputFrame
	if zero.Has(ActionUp) {
		t.Error("zero frame has no actions")
	}
	zero.Set(ActionToggle)
	if !zero.Has(ActionToggle) {
		t.Error("Set on a zero frame must record the action")
	}

	f := FrameOf(ActionLeft, ActionRestart)
	for _, a := range []Action{ActionLeft, ActionRestart} {
		if !f.Has(a) {
			t.Errorf("FrameOf should contain %v", a)
		}
	}
	if f.Has(ActionRight) {
		t.Error("FrameOf should not contain Right")
	}
}

func TestActionString(t *testing.T) {
	if got := ActionToggle.String(); got != "Toggle" {
		t.Errorf("ActionToggle.String() = %q", got)
	}
	if got := Action(99).String(); got != "Unknown" {
		t.Errorf("Action(99).String() = %q", got)
	}
}
