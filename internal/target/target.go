// Package target decides whether a window belongs to the tracked application.
package target

import (
	"strings"

	"github.com/frudas24/cursorcage/internal/winsys"
)

// Spec identifies the application to track. Set once at startup.
type Spec struct {
	// ExeName is the executable base name of the target process.
	ExeName string
	// TitleSubstring is matched against window titles when the owning
	// process cannot be queried.
	TitleSubstring string
}

// Matcher answers whether window handles belong to the target application.
type Matcher struct {
	probe winsys.Probe
	spec  Spec
}

// NewMatcher returns a matcher for the given target over a window probe.
func NewMatcher(probe winsys.Probe, spec Spec) *Matcher {
	return &Matcher{probe: probe, spec: spec}
}

// Spec returns the immutable target descriptor.
func (m *Matcher) Spec() Spec {
	return m.spec
}

// IsTarget reports whether the window belongs to the target application.
// Fails closed for zero or dead handles. Ownership is re-resolved on every
// call because window handles are reused across processes.
func (m *Matcher) IsTarget(h winsys.Handle) bool {
	if h == 0 || !m.probe.WindowValid(h) {
		return false
	}
	if exe, ok := m.probe.WindowProcess(h); ok {
		return strings.EqualFold(exe, m.spec.ExeName)
	}
	// Restricted query rights: fall back to the window title.
	if m.spec.TitleSubstring == "" {
		return false
	}
	return strings.Contains(m.probe.WindowTitle(h), m.spec.TitleSubstring)
}
