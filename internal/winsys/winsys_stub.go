//go:build !windows

// Package winsys exposes the OS window and cursor subsystem used for
// confinement decisions.
package winsys

// NewProbe returns ErrUnsupported on non-Windows platforms.
func NewProbe() (Probe, error) {
	return nil, ErrUnsupported
}

// NewCursor returns ErrUnsupported on non-Windows platforms.
func NewCursor() (Cursor, error) {
	return nil, ErrUnsupported
}

// Monitors returns ErrUnsupported on non-Windows platforms.
func Monitors() ([]Monitor, error) {
	return nil, ErrUnsupported
}

// ThreadPump is a placeholder message pump for non-Windows builds.
type ThreadPump struct{}

// NewThreadPump returns a non-functional pump on non-Windows platforms.
func NewThreadPump(hotkeyID int) *ThreadPump {
	_ = hotkeyID
	return &ThreadPump{}
}

// Drain reports no pending messages on non-Windows platforms.
func (p *ThreadPump) Drain() int {
	return 0
}
