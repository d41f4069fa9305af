package hook

import (
	"testing"

	"github.com/frudas24/cursorcage/internal/state"
	"github.com/frudas24/cursorcage/internal/target"
	"github.com/frudas24/cursorcage/internal/testutil"
	"github.com/frudas24/cursorcage/internal/wingeom"
)

// newRecenterHarness returns a recenterer with a focused 800x600 target.
func newRecenterHarness() (*Recenterer, *testutil.FakeProbe, *testutil.FakeCursor, *state.State) {
	probe := testutil.NewFakeProbe()
	probe.AddWindow(1, testutil.FakeWindow{
		Visible:  true,
		Rect:     wingeom.Rect{Left: 100, Top: 100, Right: 900, Bottom: 700},
		Exe:      "Minecraft.Windows.exe",
		ExeKnown: true,
	})
	probe.Foreground = 1

	cursor := &testutil.FakeCursor{}
	st := state.New()
	st.SetRecenterKey(0x09) // TAB
	matcher := target.NewMatcher(probe, target.Spec{ExeName: "Minecraft.Windows.exe"})
	return NewRecenterer(probe, cursor, matcher, st), probe, cursor, st
}

// TestOnKeyDown_RecentersOnConfiguredKey verifies the configured key moves
// the cursor to the window center.
func TestOnKeyDown_RecentersOnConfiguredKey(t *testing.T) {
	r, _, cursor, _ := newRecenterHarness()
	r.OnKeyDown(0x09)

	moves := cursor.Named("MoveTo")
	if len(moves) != 1 {
		t.Fatalf("expected one move, got %#v", cursor.Calls)
	}
	if moves[0].Point != (wingeom.Point{X: 500, Y: 400}) {
		t.Fatalf("expected window center (500,400), got %v", moves[0].Point)
	}
}

// TestOnKeyDown_RecentersOnEscape verifies Escape always doubles as the
// recenter key.
func TestOnKeyDown_RecentersOnEscape(t *testing.T) {
	r, _, cursor, _ := newRecenterHarness()
	r.OnKeyDown(0x1B)

	if len(cursor.Named("MoveTo")) != 1 {
		t.Fatalf("expected escape to recenter, got %#v", cursor.Calls)
	}
}

// TestOnKeyDown_IgnoresOtherKeys verifies unrelated keys do nothing.
func TestOnKeyDown_IgnoresOtherKeys(t *testing.T) {
	r, _, cursor, _ := newRecenterHarness()
	r.OnKeyDown('A')
	r.OnKeyDown(0x70)

	if len(cursor.Calls) != 0 {
		t.Fatalf("unrelated keys must not move the cursor, got %#v", cursor.Calls)
	}
}

// TestOnKeyDown_IgnoresOtherForeground verifies the key is inert while a
// different application is focused.
func TestOnKeyDown_IgnoresOtherForeground(t *testing.T) {
	r, probe, cursor, _ := newRecenterHarness()
	probe.AddWindow(2, testutil.FakeWindow{Visible: true, Exe: "editor.exe", ExeKnown: true})
	probe.Foreground = 2

	r.OnKeyDown(0x09)
	if len(cursor.Calls) != 0 {
		t.Fatalf("foreign foreground must not recenter, got %#v", cursor.Calls)
	}
}

// TestOnKeyDown_IgnoresMinimizedTarget verifies the fast-qualify gate.
func TestOnKeyDown_IgnoresMinimizedTarget(t *testing.T) {
	r, probe, cursor, _ := newRecenterHarness()
	probe.Windows[1].Minimized = true

	r.OnKeyDown(0x09)
	if len(cursor.Calls) != 0 {
		t.Fatalf("minimized target must not recenter, got %#v", cursor.Calls)
	}
}

// TestOnKeyDown_FollowsKeyChange verifies the atomic key read picks up a
// reconfigured key.
func TestOnKeyDown_FollowsKeyChange(t *testing.T) {
	r, _, cursor, st := newRecenterHarness()
	st.SetRecenterKey('R')

	r.OnKeyDown(0x09)
	if len(cursor.Calls) != 0 {
		t.Fatalf("old key should no longer recenter")
	}
	r.OnKeyDown('R')
	if len(cursor.Named("MoveTo")) != 1 {
		t.Fatalf("new key should recenter, got %#v", cursor.Calls)
	}
}
