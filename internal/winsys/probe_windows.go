//go:build windows

// Package winsys exposes the OS window and cursor subsystem used for
// confinement decisions.
package winsys

import (
	"path/filepath"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"

	"github.com/frudas24/cursorcage/internal/wingeom"
)

// guiThreadInfo mirrors the Win32 GUITHREADINFO structure.
type guiThreadInfo struct {
	cbSize        uint32
	flags         uint32
	hwndActive    win.HWND
	hwndFocus     win.HWND
	hwndCapture   win.HWND
	hwndMenuOwner win.HWND
	hwndMoveSize  win.HWND
	hwndCaret     win.HWND
	rcCaret       win.RECT
}

// WinProbe answers window queries through WinAPI.
type WinProbe struct{}

// NewProbe returns a Windows window probe.
func NewProbe() (Probe, error) {
	return &WinProbe{}, nil
}

// ForegroundWindow returns the window receiving input, or zero.
func (p *WinProbe) ForegroundWindow() Handle {
	return Handle(win.GetForegroundWindow())
}

// WindowValid reports whether the handle still names a window.
func (p *WinProbe) WindowValid(h Handle) bool {
	if h == 0 {
		return false
	}
	ret, _, _ := procIsWindow.Call(uintptr(h))
	return ret != 0
}

// WindowVisible reports whether the window is shown.
func (p *WinProbe) WindowVisible(h Handle) bool {
	return win.IsWindowVisible(win.HWND(h))
}

// WindowMinimized reports whether the window is iconified.
func (p *WinProbe) WindowMinimized(h Handle) bool {
	return win.IsIconic(win.HWND(h))
}

// WindowRect returns the window bounds in screen coordinates.
func (p *WinProbe) WindowRect(h Handle) (wingeom.Rect, bool) {
	var r win.RECT
	if !win.GetWindowRect(win.HWND(h), &r) {
		return wingeom.Rect{}, false
	}
	return fromWinRect(r), true
}

// ClientRectOnScreen returns the client area in screen coordinates.
func (p *WinProbe) ClientRectOnScreen(h Handle) (wingeom.Rect, bool) {
	var r win.RECT
	if !win.GetClientRect(win.HWND(h), &r) {
		return wingeom.Rect{}, false
	}
	origin := win.POINT{X: r.Left, Y: r.Top}
	if !win.ClientToScreen(win.HWND(h), &origin) {
		return wingeom.Rect{}, false
	}
	return wingeom.Rect{
		Left:   origin.X,
		Top:    origin.Y,
		Right:  origin.X + (r.Right - r.Left),
		Bottom: origin.Y + (r.Bottom - r.Top),
	}, true
}

// MonitorRect returns the bounds of the monitor nearest the window.
func (p *WinProbe) MonitorRect(h Handle) (wingeom.Rect, bool) {
	mon := win.MonitorFromWindow(win.HWND(h), win.MONITOR_DEFAULTTONEAREST)
	if mon == 0 {
		return wingeom.Rect{}, false
	}
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(mon, &info) {
		return wingeom.Rect{}, false
	}
	return fromWinRect(info.RcMonitor), true
}

// WindowProcess returns the executable base name of the owning process.
func (p *WinProbe) WindowProcess(h Handle) (string, bool) {
	var pid uint32
	procGetWindowThreadProcessID.Call(uintptr(h), uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return "", false
	}
	proc, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", false
	}
	defer windows.CloseHandle(proc)

	var buf [windows.MAX_PATH]uint16
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(proc, 0, &buf[0], &size); err != nil {
		return "", false
	}
	return filepath.Base(windows.UTF16ToString(buf[:size])), true
}

// WindowTitle returns the window title text, possibly empty.
func (p *WinProbe) WindowTitle(h Handle) string {
	var buf [512]uint16
	n, _, _ := procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return ""
	}
	return windows.UTF16ToString(buf[:n])
}

// RootWindow returns the top-level ancestor of the window.
func (p *WinProbe) RootWindow(h Handle) Handle {
	if h == 0 {
		return 0
	}
	ret, _, _ := procGetAncestor.Call(uintptr(h), gaRoot)
	if ret == 0 {
		return h
	}
	return Handle(ret)
}

// WindowAtPoint returns the window under a screen point, or zero.
func (p *WinProbe) WindowAtPoint(pt wingeom.Point) Handle {
	// POINT is passed by value and packs into one 64-bit argument.
	arg := uintptr(uint32(pt.X)) | uintptr(uint32(pt.Y))<<32
	ret, _, _ := procWindowFromPoint.Call(arg)
	return Handle(ret)
}

// ThreadGUI returns the GUI state of the window's owning thread.
func (p *WinProbe) ThreadGUI(h Handle) (ThreadGUI, bool) {
	var pid uint32
	tid, _, _ := procGetWindowThreadProcessID.Call(uintptr(h), uintptr(unsafe.Pointer(&pid)))
	if tid == 0 {
		return ThreadGUI{}, false
	}
	var info guiThreadInfo
	info.cbSize = uint32(unsafe.Sizeof(info))
	ret, _, _ := procGetGUIThreadInfo.Call(tid, uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return ThreadGUI{}, false
	}
	return ThreadGUI{
		Active:  Handle(info.hwndActive),
		Capture: Handle(info.hwndCapture),
	}, true
}

// fromWinRect converts a Win32 RECT into a wingeom rectangle.
func fromWinRect(r win.RECT) wingeom.Rect {
	return wingeom.Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
