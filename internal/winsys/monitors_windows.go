//go:build windows

// Package winsys exposes the OS window and cursor subsystem used for
// confinement decisions.
package winsys

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/lxn/win"
)

// Monitors returns the list of attached displays using WinAPI.
func Monitors() ([]Monitor, error) {
	state := &enumState{}
	callback := syscall.NewCallback(state.enumProc)

	if ok := win.EnumDisplayMonitors(0, nil, callback, 0); !ok {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", syscall.GetLastError())
	}
	if len(state.list) == 0 {
		return nil, fmt.Errorf("no monitors detected")
	}
	return state.list, nil
}

type enumState struct {
	list  []Monitor
	index int
}

func (s *enumState) enumProc(hMonitor win.HMONITOR, hdc win.HDC, rect *win.RECT, lparam uintptr) uintptr {
	var info win.MONITORINFO
	info.CbSize = uint32(unsafe.Sizeof(info))
	if !win.GetMonitorInfo(hMonitor, &info) {
		return 1
	}

	s.index++
	s.list = append(s.list, Monitor{
		Index:   s.index,
		Bounds:  fromWinRect(info.RcMonitor),
		Primary: info.DwFlags&win.MONITORINFOF_PRIMARY != 0,
	})
	return 1
}
