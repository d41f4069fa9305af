// Package hotkey registers the global confinement toggle chord.
package hotkey

import (
	"fmt"
	"strings"

	"github.com/frudas24/cursorcage/internal/vkey"
)

// Modifier bits as understood by RegisterHotKey.
const (
	ModAlt   = 0x0001
	ModCtrl  = 0x0002
	ModShift = 0x0004
	ModWin   = 0x0008
)

// Chord is a modifier combination plus one key.
type Chord struct {
	Mods uint16
	Key  vkey.Key
}

// ParseChord parses a chord like "ctrl+shift+c". The last '+'-separated
// part is the key; everything before it must be a modifier name.
func ParseChord(s string) (Chord, error) {
	parts := strings.Split(s, "+")
	if len(parts) < 2 {
		return Chord{}, fmt.Errorf("chord %q needs at least one modifier", s)
	}

	var c Chord
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "alt":
			c.Mods |= ModAlt
		case "ctrl", "control":
			c.Mods |= ModCtrl
		case "shift":
			c.Mods |= ModShift
		case "win", "super":
			c.Mods |= ModWin
		default:
			return Chord{}, fmt.Errorf("unknown modifier %q in chord %q", p, s)
		}
	}

	keyName := parts[len(parts)-1]
	key, ok := vkey.Resolve(keyName)
	if !ok {
		return Chord{}, fmt.Errorf("unknown key %q in chord %q", keyName, s)
	}
	c.Key = key
	return c, nil
}

// String renders the chord in parseable lowercase-modifier form.
func (c Chord) String() string {
	var parts []string
	if c.Mods&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if c.Mods&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if c.Mods&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if c.Mods&ModWin != 0 {
		parts = append(parts, "win")
	}
	parts = append(parts, vkey.Name(c.Key))
	return strings.Join(parts, "+")
}
