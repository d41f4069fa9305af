// Package classify decides whether the target window currently warrants
// cursor confinement and computes the clip rectangle.
package classify

import (
	"github.com/frudas24/cursorcage/internal/winsys"
)

// Fullscreen qualifies a window only when it effectively covers the
// monitor it sits on: every edge within tolerance of the monitor edge, or
// window area at least MinCoverage of the monitor area. The clip
// rectangle is the full monitor bounds, not the work area.
type Fullscreen struct {
	probe winsys.Probe
	tun   Tunables
}

// Classify reports whether the window is monitor-fullscreen.
func (f *Fullscreen) Classify(h winsys.Handle) Verdict {
	if h == 0 || !f.probe.WindowValid(h) || !f.probe.WindowVisible(h) {
		return Verdict{}
	}
	wr, ok := f.probe.WindowRect(h)
	if !ok {
		return Verdict{}
	}
	mr, ok := f.probe.MonitorRect(h)
	if !ok {
		return Verdict{}
	}
	if wr.NearlyEqual(mr, f.tun.EdgeTolerancePx) {
		return Verdict{Qualifies: true, Clip: mr}
	}
	// Borderless windows can miss the edge test yet still fill the
	// monitor for practical purposes.
	if wr.CoverageOf(mr) >= f.tun.MinCoverage {
		return Verdict{Qualifies: true, Clip: mr}
	}
	return Verdict{}
}
