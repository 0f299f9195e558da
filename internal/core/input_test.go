package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable
	if f.Has(ActionJump) {
		t.Fatal("empty frame should not have Jump")
	}

	f.Set(ActionJump)
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set(Jump) should mark Jump")
	}
	if len(f.Actions) != 1 {
		t.Errorf("repeated Set should collapse, got %d actions", len(f.Actions))
	}

	f.Clear()
	if f.Has(ActionJump) {
		t.Error("Clear should drop Jump")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionJump:    "Jump",
		ActionStart:   "Start",
		ActionRestart: "Restart",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("%d.String() = %q, expected %q", a, a.String(), want)
		}
	}
}
