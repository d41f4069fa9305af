package state

import (
	"sync"
	"testing"

	"github.com/frudas24/cursorcage/internal/vkey"
)

// TestNew_Defaults verifies confinement starts enabled with the default key.
func TestNew_Defaults(t *testing.T) {
	s := New()
	if !s.Enabled() {
		t.Fatalf("confinement should start enabled")
	}
	if !s.Running() {
		t.Fatalf("process should start running")
	}
	if s.RecenterKey() != vkey.KeyE {
		t.Fatalf("default recenter key should be E, got %#x", s.RecenterKey())
	}
}

// TestToggle_FlipsAndReturnsNewValue verifies toggle semantics.
func TestToggle_FlipsAndReturnsNewValue(t *testing.T) {
	s := New()
	if got := s.Toggle(); got != false {
		t.Fatalf("first toggle should disable, got %v", got)
	}
	if s.Enabled() {
		t.Fatalf("flag should be false after first toggle")
	}
	if got := s.Toggle(); got != true {
		t.Fatalf("second toggle should enable, got %v", got)
	}
}

// TestToggle_ConcurrentFlipsBalance verifies an even number of concurrent
// toggles lands back on the initial value.
func TestToggle_ConcurrentFlipsBalance(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Toggle()
		}()
	}
	wg.Wait()
	if !s.Enabled() {
		t.Fatalf("100 toggles should restore the enabled flag")
	}
}

// TestSnapshot_ReflectsFlags verifies the diagnostic snapshot.
func TestSnapshot_ReflectsFlags(t *testing.T) {
	s := New()
	s.SetRecenterKey(0x09)
	s.SetEnabled(false)
	s.Stop()

	snap := s.Snapshot()
	if snap.Enabled || snap.Running {
		t.Fatalf("unexpected snapshot flags: %+v", snap)
	}
	if snap.RecenterKey != "TAB" {
		t.Fatalf("expected TAB, got %q", snap.RecenterKey)
	}
}
