// Package hook observes system-wide key-down events without consuming them.
package hook

import (
	"github.com/frudas24/cursorcage/internal/classify"
	"github.com/frudas24/cursorcage/internal/state"
	"github.com/frudas24/cursorcage/internal/target"
	"github.com/frudas24/cursorcage/internal/vkey"
	"github.com/frudas24/cursorcage/internal/winsys"
)

// Recenterer decides and performs cursor recentering on a global key-down.
// OnKeyDown runs inside the keyboard-hook callback: no logging, no
// blocking, no unbounded allocation. Slow callbacks degrade system-wide
// input latency and can get the hook unregistered by the OS.
type Recenterer struct {
	probe   winsys.Probe
	cursor  winsys.Cursor
	matcher *target.Matcher
	st      *state.State
}

// NewRecenterer returns the key-down handler for the keyboard hook.
func NewRecenterer(probe winsys.Probe, cursor winsys.Cursor, matcher *target.Matcher, st *state.State) *Recenterer {
	return &Recenterer{probe: probe, cursor: cursor, matcher: matcher, st: st}
}

// OnKeyDown recenters the cursor when the configured key or Escape is
// pressed while the target window is focused and qualifying. The key
// event itself is always forwarded unchanged by the hook.
func (r *Recenterer) OnKeyDown(vk uint32) {
	key := vkey.Key(vk)
	if key != r.st.RecenterKey() && key != vkey.KeyEscape {
		return
	}
	fg := r.probe.ForegroundWindow()
	if fg == 0 || !r.matcher.IsTarget(fg) {
		return
	}
	if !classify.FastQualifies(r.probe, fg) {
		return
	}
	if wr, ok := r.probe.WindowRect(fg); ok {
		_ = r.cursor.MoveTo(wr.Center())
	}
}
