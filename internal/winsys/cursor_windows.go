//go:build windows

// Package winsys exposes the OS window and cursor subsystem used for
// confinement decisions.
package winsys

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"

	"github.com/frudas24/cursorcage/internal/wingeom"
)

// WinCursor commands the system cursor through WinAPI.
type WinCursor struct{}

// NewCursor returns a Windows cursor controller.
func NewCursor() (Cursor, error) {
	return &WinCursor{}, nil
}

// Clip confines the cursor to the given screen rectangle.
func (c *WinCursor) Clip(r wingeom.Rect) error {
	wr := win.RECT{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
	ret, _, _ := procClipCursor.Call(uintptr(unsafe.Pointer(&wr)))
	if ret == 0 {
		return fmt.Errorf("ClipCursor failed: %w", syscall.GetLastError())
	}
	return nil
}

// Release removes any cursor confinement region.
func (c *WinCursor) Release() error {
	ret, _, _ := procClipCursor.Call(0)
	if ret == 0 {
		return fmt.Errorf("ClipCursor(release) failed: %w", syscall.GetLastError())
	}
	return nil
}

// MoveTo places the cursor at a screen point.
func (c *WinCursor) MoveTo(p wingeom.Point) error {
	if !win.SetCursorPos(p.X, p.Y) {
		return fmt.Errorf("SetCursorPos failed: %w", syscall.GetLastError())
	}
	return nil
}
