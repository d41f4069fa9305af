package classify

import (
	"testing"

	"github.com/frudas24/cursorcage/internal/testutil"
	"github.com/frudas24/cursorcage/internal/wingeom"
)

// monitorFHD is the display used throughout the classifier tests.
var monitorFHD = wingeom.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}

// TestForPolicy_SelectsImplementation verifies policy name dispatch.
func TestForPolicy_SelectsImplementation(t *testing.T) {
	probe := testutil.NewFakeProbe()
	tun := DefaultTunables()

	c, err := ForPolicy(PolicyFullscreen, probe, tun)
	if err != nil {
		t.Fatalf("fullscreen policy: %v", err)
	}
	if _, ok := c.(*Fullscreen); !ok {
		t.Fatalf("expected *Fullscreen, got %T", c)
	}

	c, err = ForPolicy(PolicyFocus, probe, tun)
	if err != nil {
		t.Fatalf("focus policy: %v", err)
	}
	if _, ok := c.(*Focus); !ok {
		t.Fatalf("expected *Focus, got %T", c)
	}

	if _, err := ForPolicy("bogus", probe, tun); err == nil {
		t.Fatalf("unknown policy should error")
	}
}

// TestFullscreen_ExactMonitorBounds verifies the edge-match branch.
func TestFullscreen_ExactMonitorBounds(t *testing.T) {
	probe := testutil.NewFakeProbe()
	probe.AddWindow(1, testutil.FakeWindow{
		Visible:    true,
		Rect:       monitorFHD,
		Monitor:    monitorFHD,
		HasMonitor: true,
	})

	c := &Fullscreen{probe: probe, tun: DefaultTunables()}
	v := c.Classify(1)
	if !v.Qualifies {
		t.Fatalf("exact monitor bounds should qualify")
	}
	if v.Clip != monitorFHD {
		t.Fatalf("clip should be monitor bounds, got %v", v.Clip)
	}
}

// TestFullscreen_NearMatchWithinTolerance verifies the per-edge slack.
func TestFullscreen_NearMatchWithinTolerance(t *testing.T) {
	probe := testutil.NewFakeProbe()
	probe.AddWindow(1, testutil.FakeWindow{
		Visible:    true,
		Rect:       wingeom.Rect{Left: -7, Top: -7, Right: 1927, Bottom: 1087},
		Monitor:    monitorFHD,
		HasMonitor: true,
	})

	c := &Fullscreen{probe: probe, tun: DefaultTunables()}
	if v := c.Classify(1); !v.Qualifies || v.Clip != monitorFHD {
		t.Fatalf("borderless bounds within tolerance should qualify, got %+v", v)
	}
}

// TestFullscreen_AreaCoverageBranch verifies a slightly offset window
// qualifies once it covers enough of the monitor area.
func TestFullscreen_AreaCoverageBranch(t *testing.T) {
	probe := testutil.NewFakeProbe()
	// 95% of the monitor area, offset past the edge tolerance.
	probe.AddWindow(1, testutil.FakeWindow{
		Visible:    true,
		Rect:       wingeom.Rect{Left: 20, Top: 20, Right: 1892, Bottom: 1072},
		Monitor:    monitorFHD,
		HasMonitor: true,
	})

	c := &Fullscreen{probe: probe, tun: DefaultTunables()}
	if v := c.Classify(1); !v.Qualifies || v.Clip != monitorFHD {
		t.Fatalf("95%% coverage should qualify via the area branch, got %+v", v)
	}
}

// TestFullscreen_WindowedDoesNotQualify verifies a small window is rejected.
func TestFullscreen_WindowedDoesNotQualify(t *testing.T) {
	probe := testutil.NewFakeProbe()
	probe.AddWindow(1, testutil.FakeWindow{
		Visible:    true,
		Rect:       wingeom.Rect{Left: 100, Top: 100, Right: 900, Bottom: 700},
		Monitor:    monitorFHD,
		HasMonitor: true,
	})

	c := &Fullscreen{probe: probe, tun: DefaultTunables()}
	if v := c.Classify(1); v.Qualifies {
		t.Fatalf("800x600 window should not qualify as fullscreen")
	}
}

// TestFullscreen_InvalidOrHiddenShortCircuits verifies the fail-closed paths.
func TestFullscreen_InvalidOrHiddenShortCircuits(t *testing.T) {
	probe := testutil.NewFakeProbe()
	probe.AddWindow(1, testutil.FakeWindow{Visible: false, Rect: monitorFHD, Monitor: monitorFHD, HasMonitor: true})

	c := &Fullscreen{probe: probe, tun: DefaultTunables()}
	if c.Classify(0).Qualifies {
		t.Fatalf("zero handle should not qualify")
	}
	if c.Classify(99).Qualifies {
		t.Fatalf("dead handle should not qualify")
	}
	if c.Classify(1).Qualifies {
		t.Fatalf("hidden window should not qualify")
	}
}

// focusProbe returns a probe with an unobstructed 800x600 foreground target.
func focusProbe() *testutil.FakeProbe {
	probe := testutil.NewFakeProbe()
	probe.AddWindow(1, testutil.FakeWindow{
		Visible:    true,
		Rect:       wingeom.Rect{Left: 100, Top: 100, Right: 900, Bottom: 700},
		ClientRect: wingeom.Rect{Left: 108, Top: 131, Right: 892, Bottom: 692},
		HasClient:  true,
	})
	probe.Foreground = 1
	return probe
}

// TestFocus_WindowedForegroundQualifies verifies an unobstructed windowed
// target qualifies with the client area as the clip rectangle.
func TestFocus_WindowedForegroundQualifies(t *testing.T) {
	probe := focusProbe()
	c := &Focus{probe: probe, tun: DefaultTunables()}

	v := c.Classify(1)
	if !v.Qualifies {
		t.Fatalf("foreground windowed target should qualify")
	}
	want := wingeom.Rect{Left: 108, Top: 131, Right: 892, Bottom: 692}
	if v.Clip != want {
		t.Fatalf("clip should be the screen-space client area, got %v", v.Clip)
	}
}

// TestFocus_FallsBackToWindowRect verifies the clip fallback when the
// client area cannot be resolved.
func TestFocus_FallsBackToWindowRect(t *testing.T) {
	probe := focusProbe()
	probe.Windows[1].HasClient = false
	c := &Focus{probe: probe, tun: DefaultTunables()}

	v := c.Classify(1)
	if !v.Qualifies {
		t.Fatalf("target should still qualify without a client rect")
	}
	if v.Clip != probe.Windows[1].Rect {
		t.Fatalf("clip should fall back to window bounds, got %v", v.Clip)
	}
}

// TestFocus_RejectsNonForeground verifies focus is required.
func TestFocus_RejectsNonForeground(t *testing.T) {
	probe := focusProbe()
	probe.AddWindow(2, testutil.FakeWindow{Visible: true, Rect: monitorFHD})
	probe.Foreground = 2

	c := &Focus{probe: probe, tun: DefaultTunables()}
	if c.Classify(1).Qualifies {
		t.Fatalf("background target should not qualify")
	}
}

// TestFocus_RejectsMinimizedAndHidden verifies the visibility conditions.
func TestFocus_RejectsMinimizedAndHidden(t *testing.T) {
	probe := focusProbe()
	probe.Windows[1].Minimized = true
	c := &Focus{probe: probe, tun: DefaultTunables()}
	if c.Classify(1).Qualifies {
		t.Fatalf("minimized target should not qualify")
	}

	probe = focusProbe()
	probe.Windows[1].Visible = false
	c = &Focus{probe: probe, tun: DefaultTunables()}
	if c.Classify(1).Qualifies {
		t.Fatalf("hidden target should not qualify")
	}

	probe = focusProbe()
	probe.Windows[1].Rect = wingeom.Rect{Left: 100, Top: 100, Right: 100, Bottom: 700}
	c = &Focus{probe: probe, tun: DefaultTunables()}
	if c.Classify(1).Qualifies {
		t.Fatalf("zero-width target should not qualify")
	}
}

// TestFocus_RejectsForeignActiveOrCapture verifies the thread GUI checks.
func TestFocus_RejectsForeignActiveOrCapture(t *testing.T) {
	probe := focusProbe()
	probe.AddWindow(2, testutil.FakeWindow{Visible: true})
	probe.GUIKnown = true
	probe.GUI.Active = 2

	c := &Focus{probe: probe, tun: DefaultTunables()}
	if c.Classify(1).Qualifies {
		t.Fatalf("foreign thread-active window should disqualify")
	}

	probe.GUI.Active = 1
	probe.GUI.Capture = 2
	if c.Classify(1).Qualifies {
		t.Fatalf("foreign capture window should disqualify")
	}

	probe.GUI.Capture = 1
	if !c.Classify(1).Qualifies {
		t.Fatalf("own active and capture windows should qualify")
	}
}

// TestFocus_ObstructionThreshold verifies the sampled-point threshold: an
// overlay covering one grid column still qualifies, two columns do not.
func TestFocus_ObstructionThreshold(t *testing.T) {
	// 4x4 grid over (100,100)-(900,700) with 0.12 margin puts columns at
	// x = 196, 398, 601, 804 and rows at y = 172, 324, 476, 628.
	probe := focusProbe()
	overlay := testutil.FakeWindow{
		Visible: true,
		Rect:    wingeom.Rect{Left: 780, Top: 0, Right: 1000, Bottom: 1080},
	}
	probe.AddWindow(2, overlay)

	c := &Focus{probe: probe, tun: DefaultTunables()}
	v := c.Classify(1)
	if !v.Qualifies {
		t.Fatalf("4 of 16 samples obstructed is exactly at threshold, should qualify")
	}

	// Widen the overlay to swallow a second column.
	probe.Windows[2].Rect.Left = 580
	if c.Classify(1).Qualifies {
		t.Fatalf("8 of 16 samples obstructed should disqualify")
	}
}

// TestFastQualifies_ForegroundVisiblePrefix verifies the hook-path check.
func TestFastQualifies_ForegroundVisiblePrefix(t *testing.T) {
	probe := focusProbe()
	if !FastQualifies(probe, 1) {
		t.Fatalf("visible foreground target should fast-qualify")
	}

	probe.Foreground = 0
	if FastQualifies(probe, 1) {
		t.Fatalf("no foreground window should fail fast-qualify")
	}

	probe = focusProbe()
	probe.Windows[1].Minimized = true
	if FastQualifies(probe, 1) {
		t.Fatalf("minimized target should fail fast-qualify")
	}

	if FastQualifies(testutil.NewFakeProbe(), 1) {
		t.Fatalf("dead handle should fail fast-qualify")
	}
}
