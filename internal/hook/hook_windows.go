//go:build windows

// Package hook observes system-wide key-down events without consuming them.
package hook

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const whKeyboardLL = 13

var (
	user32 = windows.NewLazySystemDLL("user32.dll")

	procSetWindowsHookExW   = user32.NewProc("SetWindowsHookExW")
	procUnhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	procCallNextHookEx      = user32.NewProc("CallNextHookEx")
)

// kbdllHookStruct mirrors the Win32 KBDLLHOOKSTRUCT structure.
type kbdllHookStruct struct {
	vkCode      uint32
	scanCode    uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

// installed is the single process-wide hook. The callback trampoline is
// created once; WH_KEYBOARD_LL allows only one useful hook per process
// here anyway.
var installed *Hook

// hookCallback is the shared trampoline dispatching to the installed hook.
var hookCallback = syscall.NewCallback(lowLevelKeyboardProc)

// Hook is an installed low-level keyboard hook.
type Hook struct {
	handle    uintptr
	onKeyDown func(vk uint32)
}

// Install registers a system-wide low-level keyboard hook that calls fn
// on every key-down. fn must be fast and non-blocking. Events are never
// consumed.
func Install(fn func(vk uint32)) (*Hook, error) {
	if installed != nil {
		return nil, fmt.Errorf("keyboard hook already installed")
	}
	h := &Hook{onKeyDown: fn}
	ret, _, _ := procSetWindowsHookExW.Call(whKeyboardLL, hookCallback, 0, 0)
	if ret == 0 {
		return nil, fmt.Errorf("SetWindowsHookEx failed: %w", syscall.GetLastError())
	}
	h.handle = ret
	installed = h
	return h, nil
}

// Uninstall removes the hook. Safe to call once after Install succeeds.
func (h *Hook) Uninstall() {
	if h.handle == 0 {
		return
	}
	procUnhookWindowsHookEx.Call(h.handle)
	h.handle = 0
	if installed == h {
		installed = nil
	}
}

// lowLevelKeyboardProc forwards key-downs to the installed handler and
// always passes the event to the next hook in the chain.
func lowLevelKeyboardProc(nCode, wParam, lParam uintptr) uintptr {
	if nCode == 0 && installed != nil {
		if wParam == win.WM_KEYDOWN || wParam == win.WM_SYSKEYDOWN {
			kb := (*kbdllHookStruct)(unsafe.Pointer(lParam))
			installed.onKeyDown(kb.vkCode)
		}
	}
	var handle uintptr
	if installed != nil {
		handle = installed.handle
	}
	ret, _, _ := procCallNextHookEx.Call(handle, nCode, wParam, lParam)
	return ret
}
