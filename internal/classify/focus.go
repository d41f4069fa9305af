// Package classify decides whether the target window currently warrants
// cursor confinement and computes the clip rectangle.
package classify

import "github.com/frudas24/cursorcage/internal/winsys"

// Focus qualifies a window that is visible, foreground, and not obstructed
// by other applications' windows. Unlike the fullscreen policy it also
// covers windowed and borderless modes, so an interior sample grid guards
// against confining the cursor under an overlapping window. The clip
// rectangle is the client area in screen coordinates.
type Focus struct {
	probe winsys.Probe
	tun   Tunables
}

// Classify reports whether the window is focused, visible, and unobstructed.
func (f *Focus) Classify(h winsys.Handle) Verdict {
	if h == 0 || !f.probe.WindowValid(h) || !f.probe.WindowVisible(h) {
		return Verdict{}
	}
	if f.probe.WindowMinimized(h) {
		return Verdict{}
	}
	wr, ok := f.probe.WindowRect(h)
	if !ok || wr.Empty() {
		return Verdict{}
	}

	root := f.probe.RootWindow(h)
	fg := f.probe.ForegroundWindow()
	if fg == 0 || f.probe.RootWindow(fg) != root {
		return Verdict{}
	}

	if gui, ok := f.probe.ThreadGUI(h); ok {
		if gui.Active != 0 && f.probe.RootWindow(gui.Active) != root {
			return Verdict{}
		}
		if gui.Capture != 0 && f.probe.RootWindow(gui.Capture) != root {
			return Verdict{}
		}
	}

	if !f.unobstructed(h, root) {
		return Verdict{}
	}

	clip, ok := f.probe.ClientRectOnScreen(h)
	if !ok || clip.Empty() {
		clip = wr
	}
	return Verdict{Qualifies: true, Clip: clip}
}

// unobstructed hit-tests an interior sample grid and reports whether
// enough points resolve to the window's own tree.
func (f *Focus) unobstructed(h winsys.Handle, root winsys.Handle) bool {
	wr, ok := f.probe.WindowRect(h)
	if !ok {
		return false
	}
	pts := wr.SampleGrid(f.tun.SampleGrid, f.tun.SampleMargin)
	if len(pts) == 0 {
		return false
	}
	owned := 0
	for _, pt := range pts {
		hit := f.probe.WindowAtPoint(pt)
		if hit != 0 && f.probe.RootWindow(hit) == root {
			owned++
		}
	}
	return float64(owned) >= f.tun.SampleThreshold*float64(len(pts))
}
