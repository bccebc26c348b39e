package core

import "testing"

func TestInputFrameEdgesAndLevels(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Hold(ActionLeft)

	if !f.Has(ActionJump) || f.Has(ActionLeft) {
		t.Error("Has should report only pressed actions")
	}
	if !f.IsHeld(ActionLeft) || f.IsHeld(ActionJump) {
		t.Error("IsHeld should report only held actions")
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionJump) || f.IsHeld(ActionLeft) {
		t.Error("Clear should reset both maps")
	}
	if !clone.Has(ActionJump) || !clone.IsHeld(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.IsHeld(ActionRight) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionRestart)
	f.Hold(ActionRight)
	if !f.Has(ActionRestart) || !f.IsHeld(ActionRight) {
		t.Error("zero frame should lazily allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionLeft:    "Left",
		ActionRight:   "Right",
		ActionJump:    "Jump",
		ActionRestart: "Restart",
		ActionPause:   "Pause",
		ActionQuit:    "Quit",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
