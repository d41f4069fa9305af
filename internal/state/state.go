// Package state holds process-wide runtime flags behind atomic access.
package state

import (
	"sync/atomic"

	"github.com/frudas24/cursorcage/internal/vkey"
)

// Snapshot represents a read-only view of the runtime flags.
type Snapshot struct {
	Enabled     bool
	Running     bool
	RecenterKey string
}

// State is shared between the poll loop, the keyboard-hook callback, and
// the signal handler. Every field is atomic; the hook callback must never
// block on a lock.
type State struct {
	enabled     atomic.Bool
	running     atomic.Bool
	recenterKey atomic.Uint32
}

// New returns runtime state with confinement enabled and the process running.
func New() *State {
	s := &State{}
	s.enabled.Store(true)
	s.running.Store(true)
	s.recenterKey.Store(uint32(vkey.KeyE))
	return s
}

// Enabled reports whether confinement is enabled by user intent.
func (s *State) Enabled() bool {
	return s.enabled.Load()
}

// SetEnabled sets the confinement-enabled flag.
func (s *State) SetEnabled(v bool) {
	s.enabled.Store(v)
}

// Toggle flips the confinement-enabled flag and returns the new value.
func (s *State) Toggle() bool {
	for {
		old := s.enabled.Load()
		if s.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Running reports whether the process should keep polling.
func (s *State) Running() bool {
	return s.running.Load()
}

// Stop clears the running flag.
func (s *State) Stop() {
	s.running.Store(false)
}

// RecenterKey returns the configured recenter key code.
func (s *State) RecenterKey() vkey.Key {
	return vkey.Key(s.recenterKey.Load())
}

// SetRecenterKey stores the configured recenter key code.
func (s *State) SetRecenterKey(k vkey.Key) {
	s.recenterKey.Store(uint32(k))
}

// Snapshot returns a copy of the current flags for diagnostics.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Enabled:     s.Enabled(),
		Running:     s.Running(),
		RecenterKey: vkey.Name(s.RecenterKey()),
	}
}
