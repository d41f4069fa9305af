//go:build windows

// Package hotkey registers the global confinement toggle chord.
package hotkey

import (
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procRegisterHotKey   = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey = user32.NewProc("UnregisterHotKey")
)

// Registration is a registered global hotkey bound to the calling thread.
type Registration struct {
	id int
}

// Register claims the chord system-wide. WM_HOTKEY messages arrive on the
// registering thread's queue, so Register must run on the pump thread.
func Register(id int, c Chord) (*Registration, error) {
	ret, _, _ := procRegisterHotKey.Call(0, uintptr(id), uintptr(c.Mods), uintptr(c.Key))
	if ret == 0 {
		return nil, fmt.Errorf("RegisterHotKey %s failed: %w", c, syscall.GetLastError())
	}
	return &Registration{id: id}, nil
}

// Unregister releases the hotkey.
func (r *Registration) Unregister() {
	if r == nil {
		return
	}
	procUnregisterHotKey.Call(0, uintptr(r.id))
}
