//go:build !windows

// Package hotkey registers the global confinement toggle chord.
package hotkey

import "github.com/frudas24/cursorcage/internal/winsys"

// Registration is a placeholder hotkey registration for non-Windows builds.
type Registration struct{}

// Register returns ErrUnsupported on non-Windows platforms.
func Register(id int, c Chord) (*Registration, error) {
	_ = id
	_ = c
	return nil, winsys.ErrUnsupported
}

// Unregister is a no-op on non-Windows platforms.
func (r *Registration) Unregister() {}
