//go:build windows

// Package winsys exposes the OS window and cursor subsystem used for
// confinement decisions.
package winsys

import "golang.org/x/sys/windows"

// user32 procs not covered by the lxn/win bindings.
var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procClipCursor               = user32.NewProc("ClipCursor")
	procIsWindow                 = user32.NewProc("IsWindow")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetAncestor              = user32.NewProc("GetAncestor")
	procGetGUIThreadInfo         = user32.NewProc("GetGUIThreadInfo")
	procWindowFromPoint          = user32.NewProc("WindowFromPoint")
	procGetWindowThreadProcessID = user32.NewProc("GetWindowThreadProcessId")
)

// gaRoot selects the top-level ancestor in GetAncestor.
const gaRoot = 2
