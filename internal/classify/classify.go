// Package classify decides whether the target window currently warrants
// cursor confinement and computes the clip rectangle.
package classify

import (
	"fmt"

	"github.com/frudas24/cursorcage/internal/wingeom"
	"github.com/frudas24/cursorcage/internal/winsys"
)

// Policy names accepted by ForPolicy.
const (
	PolicyFullscreen = "fullscreen"
	PolicyFocus      = "focus"
)

// Verdict is the classification result for one window at one instant.
type Verdict struct {
	Qualifies bool
	Clip      wingeom.Rect
}

// Classifier reports whether a window qualifies for confinement.
type Classifier interface {
	Classify(h winsys.Handle) Verdict
}

// Tunables are the heuristic thresholds. They were tuned for a specific
// display-scaling setup and are configuration, not constants.
type Tunables struct {
	// EdgeTolerancePx is the per-edge slack when comparing window bounds
	// to monitor bounds (fullscreen policy).
	EdgeTolerancePx int32
	// MinCoverage is the window-to-monitor area ratio treated as
	// fullscreen (fullscreen policy).
	MinCoverage float64
	// SampleGrid is the obstruction sample grid dimension, N points per
	// axis (focus policy).
	SampleGrid int
	// SampleMargin is the interior inset fraction per edge before
	// sampling (focus policy).
	SampleMargin float64
	// SampleThreshold is the minimum fraction of samples that must
	// hit-test to the target's own window tree (focus policy).
	SampleThreshold float64
}

// DefaultTunables returns the stock thresholds.
func DefaultTunables() Tunables {
	return Tunables{
		EdgeTolerancePx: 8,
		MinCoverage:     0.90,
		SampleGrid:      4,
		SampleMargin:    0.12,
		SampleThreshold: 0.75,
	}
}

// ForPolicy returns the classifier implementing the named policy.
func ForPolicy(policy string, probe winsys.Probe, tun Tunables) (Classifier, error) {
	switch policy {
	case PolicyFullscreen:
		return &Fullscreen{probe: probe, tun: tun}, nil
	case PolicyFocus:
		return &Focus{probe: probe, tun: tun}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", policy)
	}
}

// FastQualifies is the cheap prefix of the focus policy: valid, visible,
// not minimized, positive size, and foreground. It is safe to call from
// the keyboard-hook callback where the full obstruction sampling would be
// too slow.
func FastQualifies(probe winsys.Probe, h winsys.Handle) bool {
	if h == 0 || !probe.WindowValid(h) || !probe.WindowVisible(h) {
		return false
	}
	if probe.WindowMinimized(h) {
		return false
	}
	wr, ok := probe.WindowRect(h)
	if !ok || wr.Empty() {
		return false
	}
	fg := probe.ForegroundWindow()
	return fg != 0 && probe.RootWindow(fg) == probe.RootWindow(h)
}
