//go:build windows

// Package winsys exposes the OS window and cursor subsystem used for
// confinement decisions.
package winsys

import "github.com/lxn/win"

// ThreadPump drains the calling thread's message queue without blocking.
// Thread-scoped WM_HOTKEY delivery requires the pump to run on the thread
// that registered the hotkey.
type ThreadPump struct {
	hotkeyID uintptr
}

// NewThreadPump returns a pump that reports hits of the given hotkey id.
func NewThreadPump(hotkeyID int) *ThreadPump {
	return &ThreadPump{hotkeyID: uintptr(hotkeyID)}
}

// Drain dispatches all pending messages and returns the number of
// toggle-hotkey hits seen.
func (p *ThreadPump) Drain() int {
	hits := 0
	var msg win.MSG
	for win.PeekMessage(&msg, 0, 0, 0, win.PM_REMOVE) {
		if msg.Message == win.WM_HOTKEY && uintptr(msg.WParam) == p.hotkeyID {
			hits++
		}
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
	return hits
}
