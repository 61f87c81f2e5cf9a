package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionJump) {
		t.Error("empty frame should not report Jump")
	}

	f.Set(ActionJump)
	f.Set(ActionStart)
	if !f.Has(ActionJump) || !f.Has(ActionStart) {
		t.Error("frame should report actions that were set")
	}
	if f.Has(ActionQuit) {
		t.Error("frame should not report actions that were not set")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionStart) {
		t.Error("Clear should drop all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionJump, "Jump"},
		{ActionStart, "Start"},
		{ActionSelect, "Select"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
