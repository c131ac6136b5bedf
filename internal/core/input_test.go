package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("Zero frame should have no actions")
	}

	f.Set(ActionPause)
	f.Set(ActionBuyWorker)
	if !f.Has(ActionPause) || !f.Has(ActionBuyWorker) {
		t.Error("Set actions should be reported")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionPause) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionPause) {
		t.Error("Clone should not share storage with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionUpgradeDamage, "UpgradeDamage"},
		{ActionSpeed4, "Speed4"},
		{Action(999), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
