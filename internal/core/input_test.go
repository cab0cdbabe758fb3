package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionHardDrop) {
		t.Error("zero frame should have no actions")
	}
	if !f.Empty() {
		t.Error("zero frame should be empty")
	}

	f.Set(ActionHardDrop)
	f.Set(ActionMoveLeft)
	if !f.Has(ActionHardDrop) || !f.Has(ActionMoveLeft) {
		t.Error("Set actions should be reported by Has")
	}

	c := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
	if !c.Has(ActionHardDrop) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotateRight.String() != "RotateRight" {
		t.Errorf("got %q", ActionRotateRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("got %q", Action(99).String())
	}
}
