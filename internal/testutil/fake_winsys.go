// Package testutil provides fakes for the winsys interfaces.
package testutil

import (
	"github.com/frudas24/cursorcage/internal/wingeom"
	"github.com/frudas24/cursorcage/internal/winsys"
)

// FakeWindow describes one window known to a FakeProbe.
type FakeWindow struct {
	Visible    bool
	Minimized  bool
	Rect       wingeom.Rect
	ClientRect wingeom.Rect
	HasClient  bool
	Monitor    wingeom.Rect
	HasMonitor bool
	Exe        string
	ExeKnown   bool
	Title      string
	Root       winsys.Handle
}

// FakeProbe implements winsys.Probe over an in-memory window set.
type FakeProbe struct {
	Foreground winsys.Handle
	Windows    map[winsys.Handle]*FakeWindow
	// ZOrder lists window handles top-first for point hit-testing.
	ZOrder   []winsys.Handle
	GUI      winsys.ThreadGUI
	GUIKnown bool
}

// Ensure FakeProbe implements the interface.
var _ winsys.Probe = (*FakeProbe)(nil)

// NewFakeProbe returns an empty probe with no windows.
func NewFakeProbe() *FakeProbe {
	return &FakeProbe{Windows: map[winsys.Handle]*FakeWindow{}}
}

// AddWindow registers a window and appends it to the top of the Z order.
func (f *FakeProbe) AddWindow(h winsys.Handle, w FakeWindow) *FakeWindow {
	f.Windows[h] = &w
	f.ZOrder = append([]winsys.Handle{h}, f.ZOrder...)
	return f.Windows[h]
}

// ForegroundWindow returns the configured foreground handle.
func (f *FakeProbe) ForegroundWindow() winsys.Handle {
	return f.Foreground
}

// WindowValid reports whether the handle is registered.
func (f *FakeProbe) WindowValid(h winsys.Handle) bool {
	_, ok := f.Windows[h]
	return ok
}

// WindowVisible reports the configured visibility.
func (f *FakeProbe) WindowVisible(h winsys.Handle) bool {
	w, ok := f.Windows[h]
	return ok && w.Visible
}

// WindowMinimized reports the configured minimized flag.
func (f *FakeProbe) WindowMinimized(h winsys.Handle) bool {
	w, ok := f.Windows[h]
	return ok && w.Minimized
}

// WindowRect returns the configured window bounds.
func (f *FakeProbe) WindowRect(h winsys.Handle) (wingeom.Rect, bool) {
	w, ok := f.Windows[h]
	if !ok {
		return wingeom.Rect{}, false
	}
	return w.Rect, true
}

// ClientRectOnScreen returns the configured client bounds when present.
func (f *FakeProbe) ClientRectOnScreen(h winsys.Handle) (wingeom.Rect, bool) {
	w, ok := f.Windows[h]
	if !ok || !w.HasClient {
		return wingeom.Rect{}, false
	}
	return w.ClientRect, true
}

// MonitorRect returns the configured monitor bounds when present.
func (f *FakeProbe) MonitorRect(h winsys.Handle) (wingeom.Rect, bool) {
	w, ok := f.Windows[h]
	if !ok || !w.HasMonitor {
		return wingeom.Rect{}, false
	}
	return w.Monitor, true
}

// WindowProcess returns the configured executable name.
func (f *FakeProbe) WindowProcess(h winsys.Handle) (string, bool) {
	w, ok := f.Windows[h]
	if !ok || !w.ExeKnown {
		return "", false
	}
	return w.Exe, true
}

// WindowTitle returns the configured title.
func (f *FakeProbe) WindowTitle(h winsys.Handle) string {
	w, ok := f.Windows[h]
	if !ok {
		return ""
	}
	return w.Title
}

// RootWindow returns the configured root ancestor, defaulting to the
// window itself.
func (f *FakeProbe) RootWindow(h winsys.Handle) winsys.Handle {
	w, ok := f.Windows[h]
	if !ok || w.Root == 0 {
		return h
	}
	return w.Root
}

// WindowAtPoint scans the Z order top-first for a visible window
// containing the point.
func (f *FakeProbe) WindowAtPoint(p wingeom.Point) winsys.Handle {
	for _, h := range f.ZOrder {
		w := f.Windows[h]
		if w != nil && w.Visible && w.Rect.Contains(p) {
			return h
		}
	}
	return 0
}

// ThreadGUI returns the configured thread GUI state.
func (f *FakeProbe) ThreadGUI(h winsys.Handle) (winsys.ThreadGUI, bool) {
	_ = h
	if !f.GUIKnown {
		return winsys.ThreadGUI{}, false
	}
	return f.GUI, true
}

// CursorCall records a single cursor command.
type CursorCall struct {
	Name  string
	Rect  wingeom.Rect
	Point wingeom.Point
}

// FakeCursor implements winsys.Cursor and records calls for tests.
type FakeCursor struct {
	Calls []CursorCall
}

// Ensure FakeCursor implements the interface.
var _ winsys.Cursor = (*FakeCursor)(nil)

// Clip records a confinement request.
func (f *FakeCursor) Clip(r wingeom.Rect) error {
	f.Calls = append(f.Calls, CursorCall{Name: "Clip", Rect: r})
	return nil
}

// Release records a release request.
func (f *FakeCursor) Release() error {
	f.Calls = append(f.Calls, CursorCall{Name: "Release"})
	return nil
}

// MoveTo records a cursor move.
func (f *FakeCursor) MoveTo(p wingeom.Point) error {
	f.Calls = append(f.Calls, CursorCall{Name: "MoveTo", Point: p})
	return nil
}

// Named returns the subset of calls with the given name.
func (f *FakeCursor) Named(name string) []CursorCall {
	var out []CursorCall
	for _, c := range f.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
