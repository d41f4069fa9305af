//go:build !windows

// Package hook observes system-wide key-down events without consuming them.
package hook

import "github.com/frudas24/cursorcage/internal/winsys"

// Hook is a placeholder keyboard hook for non-Windows builds.
type Hook struct{}

// Install returns ErrUnsupported on non-Windows platforms.
func Install(fn func(vk uint32)) (*Hook, error) {
	_ = fn
	return nil, winsys.ErrUnsupported
}

// Uninstall is a no-op on non-Windows platforms.
func (h *Hook) Uninstall() {}
