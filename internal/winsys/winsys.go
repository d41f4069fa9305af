// Package winsys exposes the OS window and cursor subsystem used for
// confinement decisions.
package winsys

import (
	"errors"

	"github.com/frudas24/cursorcage/internal/wingeom"
)

// ErrUnsupported indicates the WinAPI window subsystem is not available.
var ErrUnsupported = errors.New("winsys is only supported on Windows")

// Handle identifies a top-level or child window.
type Handle uintptr

// ThreadGUI is the GUI state of the thread owning a window.
type ThreadGUI struct {
	Active  Handle
	Capture Handle
}

// Probe answers window queries. Every call reflects the desktop at the
// moment of the call; results are never cached because window handles are
// reused across processes.
type Probe interface {
	// ForegroundWindow returns the window receiving input, or zero.
	ForegroundWindow() Handle
	// WindowValid reports whether the handle still names a window.
	WindowValid(h Handle) bool
	// WindowVisible reports whether the window is shown.
	WindowVisible(h Handle) bool
	// WindowMinimized reports whether the window is iconified.
	WindowMinimized(h Handle) bool
	// WindowRect returns the window bounds in screen coordinates.
	WindowRect(h Handle) (wingeom.Rect, bool)
	// ClientRectOnScreen returns the client area in screen coordinates.
	ClientRectOnScreen(h Handle) (wingeom.Rect, bool)
	// MonitorRect returns the bounds of the monitor nearest the window.
	MonitorRect(h Handle) (wingeom.Rect, bool)
	// WindowProcess returns the executable base name of the owning
	// process. ok is false when the process cannot be queried.
	WindowProcess(h Handle) (string, bool)
	// WindowTitle returns the window title text, possibly empty.
	WindowTitle(h Handle) string
	// RootWindow returns the top-level ancestor of the window.
	RootWindow(h Handle) Handle
	// WindowAtPoint returns the window under a screen point, or zero.
	WindowAtPoint(p wingeom.Point) Handle
	// ThreadGUI returns the GUI state of the window's owning thread.
	ThreadGUI(h Handle) (ThreadGUI, bool)
}

// Cursor commands the system cursor. Clip and Release are idempotent at
// the OS level; callers track their own applied state for transition
// reporting.
type Cursor interface {
	Clip(r wingeom.Rect) error
	Release() error
	MoveTo(p wingeom.Point) error
}

// Monitor describes a display and its bounds.
type Monitor struct {
	Index   int
	Bounds  wingeom.Rect
	Primary bool
}
